// Package converter provides the built-in env.Converter implementations.
//
// Syntax failures are reported with env.FormatError; constraint failures
// (length bounds, numeric limits, allowed sets) are reported as
// errors.ConstraintViolation with a message naming the variable and the
// offending value.
//
//	secret := env.New("COOKIE_SECRET", converter.NewString().WithMinLength(50))
//	port := env.New("SERVER_PORT", converter.NewPort()).WithFallback(3000)
//
// Constraint methods mutate the converter and return it for chaining. Call
// them before the converter is used by Load.
package converter
