package apperror

// Machine-readable codes carried in every error envelope. Clients
// branch on these, not on messages, so they are stable.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"
	CodeRateLimited  = "RATE_LIMITED"

	CodeInternalError = "INTERNAL_ERROR"
)
