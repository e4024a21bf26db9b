package employeeerrors

import (
	"net/http"

	"github.com/subhankar-techs/emp-management/internal/shared/apperror"
)

var (
	ErrSelfAccessOnly = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own profile",
		http.StatusForbidden,
	)
	ErrAlreadyInactive = apperror.New(
		apperror.CodeAlreadyInState,
		"Employee is already deactivated",
		http.StatusBadRequest,
	)
	ErrAlreadyActive = apperror.New(
		apperror.CodeAlreadyInState,
		"Employee is already active",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Status filter must be ACTIVE or INACTIVE",
		http.StatusBadRequest,
	)
)
