package usererrors

import (
	"net/http"

	"github.com/subhankar-techs/emp-management/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNameTaken = apperror.New(
		apperror.CodeConflict,
		"Name already exists",
		http.StatusBadRequest,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusBadRequest,
	)
	ErrPhoneTaken = apperror.New(
		apperror.CodeConflict,
		"Phone already exists",
		http.StatusBadRequest,
	)
	ErrDuplicateUser = apperror.New(
		apperror.CodeConflict,
		"A user with the same unique details already exists",
		http.StatusBadRequest,
	)
	ErrInvalidManager = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid manager ID. Manager must be an HR Manager.",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
