// Package errors provides the error taxonomy for environment variable
// resolution. Every failure is an *AppError whose Code separates a missing
// variable from a malformed value and from a converter constraint violation,
// and whose Message is the rendered, human-readable diagnostic.
package errors
