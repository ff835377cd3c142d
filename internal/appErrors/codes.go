package appErrors

// ErrorCode identifies an error class to the mobile client.
type ErrorCode string

const (
	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStoreError    ErrorCode = "STORE_ERROR"

	// Generic business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidState     ErrorCode = "INVALID_STATE"
	CodeAlreadyApplied   ErrorCode = "ALREADY_APPLIED"

	// Authentication
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeEmailTaken         ErrorCode = "EMAIL_ALREADY_EXISTS"
)
