package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput   = "INVALID_INPUT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInvalidState   = "INVALID_STATE"
	CodeAlreadyInState = "ALREADY_IN_STATE"
	CodePastDeadline   = "PAST_DEADLINE"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
