// Package logger provides structured logging for validenv using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The env package emits its
// fallback diagnostics through a logger obtained from this package.
//
// # Usage
//
//	log := logger.Get("env")
//	log.Warn("using fallback", logger.Fields("key", "PORT"))
package logger
