package apperrors

// ErrorCode is the stable, client-visible error code string.
type ErrorCode string

const (
	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Business logic errors
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeAlreadyExists     ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeLimitExceeded     ErrorCode = "LIMIT_EXCEEDED"
	CodeMerchantBlocked   ErrorCode = "MERCHANT_BLOCKED"
	CodeMerchantInactive  ErrorCode = "MERCHANT_INACTIVE"
	CodeIllegalTransition ErrorCode = "ILLEGAL_TRANSITION"

	// Authentication
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidSignature   ErrorCode = "INVALID_SIGNATURE"
)
