package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kbukum/validenv/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a constraint violation for a single variable.
type FieldError struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// String renders the error as a sentence naming the variable and its value.
func (e FieldError) String() string {
	return fmt.Sprintf("Variable '%s' (%s) %s", e.Field, e.Value, e.Message)
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, value, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns a constraint violation if there are validation errors, nil otherwise.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = e.String()
	}

	appErr := errors.ConstraintViolation(strings.Join(messages, "; "))
	appErr.Details = map[string]any{
		errors.DetailKey: v.errors[0].Field,
		"fields":         v.errors,
	}

	return appErr
}

// MinLength checks that a string has at least minLen characters.
func (v *Validator) MinLength(field, value string, minLen int) *Validator {
	if utf8.RuneCountInString(value) < minLen {
		v.AddError(field, value, fmt.Sprintf("is too short. Min length is %d characters.", minLen))
	}
	return v
}

// MaxLength checks that a string has at most maxLen characters.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if utf8.RuneCountInString(value) > maxLen {
		v.AddError(field, value, fmt.Sprintf("is too long. Max length is %d characters.", maxLen))
	}
	return v
}

// Range checks if a number is within a range.
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	if value < minVal || value > maxVal {
		v.AddError(field, fmt.Sprint(value), fmt.Sprintf("is out of range. Must be between %d and %d.", minVal, maxVal))
	}
	return v
}

// Min checks if a number meets minimum value.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprint(value), fmt.Sprintf("is too small. The minimum is %d.", minVal))
	}
	return v
}

// Max checks if a number is within max value.
func (v *Validator) Max(field string, value, maxVal int) *Validator {
	if value > maxVal {
		v.AddError(field, fmt.Sprint(value), fmt.Sprintf("is too large. The maximum is %d.", maxVal))
	}
	return v
}

// Pattern checks if a string matches a regex pattern.
func (v *Validator) Pattern(field, value, pattern string) *Validator {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil || !matched {
		v.AddError(field, value, fmt.Sprintf("does not match pattern %s.", pattern))
	}
	return v
}

// OneOf checks if a value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, value, fmt.Sprintf("must be one of: %s.", strings.Join(allowed, ", ")))
	return v
}

// OneOfFold is OneOf with case-insensitive comparison.
func (v *Validator) OneOfFold(field, value string, allowed []string) *Validator {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return v
		}
	}
	v.AddError(field, value, fmt.Sprintf("must be one of: %s.", strings.Join(allowed, ", ")))
	return v
}
