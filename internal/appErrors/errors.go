package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the
// HTTP layer. HTTPCode never leaks into the JSON body.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is matches predefined AppErrors by code, so
// appErrors.Is(err, appErrors.ErrJobNotFound) works across Wrap chains.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors

var (
	// Authentication / identity gateway
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrEmailAlreadyExists = New(CodeEmailTaken, "Email already exists", http.StatusConflict)

	// Users
	ErrUserNotFound    = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrInvalidRole     = New(CodeValidationFailed, "User role must be Client or Professional", http.StatusBadRequest)
	ErrNotClient       = New(CodeForbidden, "Only clients may perform this operation", http.StatusForbidden)
	ErrNotProfessional = New(CodeForbidden, "Only professionals may perform this operation", http.StatusForbidden)

	// Jobs and applications
	ErrJobNotFound       = New(CodeNotFound, "Job not found", http.StatusNotFound)
	ErrJobNotOpen        = New(CodeInvalidState, "Job is no longer accepting applications", http.StatusConflict)
	ErrJobNotAssigned    = New(CodeInvalidState, "Job is not in the assigned state", http.StatusConflict)
	ErrAlreadyApplied    = New(CodeAlreadyApplied, "You have already applied for this job", http.StatusConflict)
	ErrApplicantNotFound = New(CodeNotFound, "Applicant not found", http.StatusNotFound)

	// Conversations
	ErrConversationNotFound = New(CodeNotFound, "Conversation not found", http.StatusNotFound)
	ErrNotParticipant       = New(CodeForbidden, "User is not a participant in this conversation", http.StatusForbidden)
	ErrEmptyMessage         = New(CodeValidationFailed, "Message text must not be blank", http.StatusBadRequest)
)

// ValidationError builds a 400 with per-field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// InternalError wraps an unexpected error.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// StoreError wraps a failed remote-store call. step names the write that
// failed inside a multi-step workflow so the caller knows what to retry.
func StoreError(step string, err error) *AppError {
	return Wrap(err, CodeStoreError, "Store operation failed: "+step, http.StatusBadGateway)
}

// NewUnauthorizedError builds a 401 with a custom message.
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

// NewBadRequestError builds a 400 with a custom message.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
