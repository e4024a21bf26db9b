package leaveerrors

import (
	"net/http"

	"github.com/subhankar-techs/emp-management/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must be after start date",
		http.StatusBadRequest,
	)
	ErrStartDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Start date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrInvalidReason = apperror.New(
		apperror.CodeInvalidInput,
		"Reason must be between 10 and 500 characters",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"You have overlapping leave requests for the selected dates",
		http.StatusBadRequest,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave requests can be approved or rejected",
		http.StatusBadRequest,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only cancel your own leave requests",
		http.StatusForbidden,
	)
	ErrOwnLeaveOnly = apperror.New(
		apperror.CodeForbidden,
		"Access denied. You can only view your own leave requests.",
		http.StatusForbidden,
	)
	ErrAlreadyCancelled = apperror.New(
		apperror.CodeAlreadyInState,
		"Leave request is already cancelled",
		http.StatusBadRequest,
	)
	ErrCancelRejected = apperror.New(
		apperror.CodeInvalidState,
		"Cannot cancel rejected leave request",
		http.StatusBadRequest,
	)
	ErrPastDeadline = apperror.New(
		apperror.CodePastDeadline,
		"Cannot cancel leave request after start date",
		http.StatusBadRequest,
	)
)
