package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resolution errors
const (
	// ErrCodeMissingVariable indicates the variable is not set and no fallback exists.
	ErrCodeMissingVariable ErrorCode = "MISSING_VARIABLE"
)

// Parse errors (recoverable through a fallback)
const (
	// ErrCodeInvalidFormat indicates the raw value cannot be read as the target type.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeConstraintViolation indicates the value parsed but broke a converter rule.
	ErrCodeConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure outside the parse taxonomy.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var fallbackCodes = map[ErrorCode]bool{
	ErrCodeInvalidFormat:       true,
	ErrCodeConstraintViolation: true,
}

// IsFallbackCode returns true if a failure with this code may be replaced by a fallback.
func IsFallbackCode(code ErrorCode) bool {
	return fallbackCodes[code]
}
