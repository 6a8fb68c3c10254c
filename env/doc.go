// Package env declares typed environment variables and resolves them.
//
// A Variable binds a key to a Converter, an optional description and an
// optional fallback. Load reads the key once, converts the raw string, and
// either returns the typed value, substitutes the fallback (logging a warning),
// or returns an *errors.AppError describing why resolution failed.
//
// # Usage
//
//	port, err := env.New("SERVER_PORT", converter.NewPort()).
//	    WithDescription("Port the HTTP server listens on").
//	    WithFallback(3000).
//	    Load()
//
// Declarations are meant to be loaded exactly once. Calling Load again reads
// the environment again and overwrites the stored value.
package env
