package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Detail keys attached to resolution errors.
const (
	DetailKey         = "key"
	DetailType        = "type"
	DetailValue       = "value"
	DetailDescription = "description"
)

// AppError is the unified error type for variable resolution.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is the rendered diagnostic.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the rendered message. The cause is already part of the
// message for format failures, so it is not appended again.
func (e *AppError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Resolution Error Constructors ---

// MissingVariable creates an AppError for a variable that is not set.
func MissingVariable(key, typeName, description string) *AppError {
	lines := []string{
		fmt.Sprintf("Environment variable '%s' (%s) is not declared.", key, typeName),
	}
	if description != "" {
		lines = append(lines, "Variable description: "+description)
	}

	details := map[string]any{DetailKey: key, DetailType: typeName}
	if description != "" {
		details[DetailDescription] = description
	}
	return &AppError{
		Code: ErrCodeMissingVariable, Message: strings.Join(lines, "\n"),
		Details: details,
	}
}

// InvalidFormat creates an AppError for a raw value that cannot be
// converted to typeName. cause may be nil.
func InvalidFormat(key, value, typeName, description string, cause error) *AppError {
	lines := []string{
		fmt.Sprintf("Unable to convert environment variable %s = '%s' (String) to '%s'.", key, value, typeName),
	}
	if description != "" {
		lines = append(lines, "Variable description: "+description)
	}
	if cause != nil {
		lines = append(lines, "Exception: "+cause.Error())
	}

	details := map[string]any{DetailKey: key, DetailType: typeName, DetailValue: value}
	if description != "" {
		details[DetailDescription] = description
	}
	return &AppError{
		Code: ErrCodeInvalidFormat, Message: strings.Join(lines, "\n"),
		Details: details, Cause: cause,
	}
}

// ConstraintViolation creates an AppError for a value that parsed but broke
// a converter rule. The message is composed by the converter.
func ConstraintViolation(message string) *AppError {
	return &AppError{Code: ErrCodeConstraintViolation, Message: message}
}

// Internal creates an AppError for a failure outside the parse taxonomy.
func Internal(cause error) *AppError {
	msg := "An unexpected error occurred."
	if cause != nil {
		msg = cause.Error()
	}
	return &AppError{Code: ErrCodeInternal, Message: msg, Cause: cause}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsFallbackEligible reports whether err may be replaced by a configured fallback.
func IsFallbackEligible(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && IsFallbackCode(appErr.Code)
}
