// Package config loads the service configuration every validenv-based
// program needs (name, environment, version, debug flag, logging) from
// environment variables declared with the env package.
//
// # Usage
//
//	cfg, err := config.Load(config.WithPrefix("APP_"))
//	logger.Init(cfg.Logging)
//
// Variables read (with prefix P): PNAME, PENVIRONMENT, PVERSION, PDEBUG,
// PLOG_LEVEL, PLOG_FORMAT, PLOG_OUTPUT, PLOG_NO_COLOR. Only NAME is required.
package config
