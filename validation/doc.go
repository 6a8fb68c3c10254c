// Package validation provides constraint checks for environment variable
// values.
//
// It supports programmatic validation with error collection, used by
// converters to enforce bounds, and tag-based validation through the
// validator library, used for syntax checks and configuration structs.
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.MinLength("API_KEY", raw, 32).MaxLength("API_KEY", raw, 64)
//	if err := v.Validate(); err != nil { ... }
//
// # Tag Validation
//
//	err := validation.Var("ops@example.com", "email")
//	err = validation.Struct(cfg)
package validation
