package config

import (
	"github.com/kbukum/validenv/converter"
	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/logger"
	"github.com/kbukum/validenv/version"
)

// Variable names, relative to the configured prefix.
const (
	VarName        = "NAME"
	VarEnvironment = "ENVIRONMENT"
	VarVersion     = "VERSION"
	VarDebug       = "DEBUG"
	VarLogLevel    = "LOG_LEVEL"
	VarLogFormat   = "LOG_FORMAT"
	VarLogOutput   = "LOG_OUTPUT"
	VarLogNoColor  = "LOG_NO_COLOR"
)

// LoaderConfig holds the collaborators applied to every declared variable.
type LoaderConfig struct {
	Prefix   string
	Lookup   env.Lookuper
	Logger   *logger.Logger
	Recorder env.Recorder
}

// Option is a functional option for Load.
type Option func(*LoaderConfig)

// WithPrefix prepends prefix to every variable name (e.g. "APP_").
func WithPrefix(prefix string) Option {
	return func(lc *LoaderConfig) { lc.Prefix = prefix }
}

// WithLookup reads variables from lookup instead of the process environment.
func WithLookup(lookup env.Lookuper) Option {
	return func(lc *LoaderConfig) { lc.Lookup = lookup }
}

// WithLogger sets the logger receiving fallback diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(lc *LoaderConfig) { lc.Logger = l }
}

// WithRecorder sets the recorder notified of each load outcome.
func WithRecorder(r env.Recorder) Option {
	return func(lc *LoaderConfig) { lc.Recorder = r }
}

// Declare creates a variable named lc.Prefix+name wired to the loader's
// lookup, logger and recorder.
func Declare[T any](lc LoaderConfig, name string, conv env.Converter[T]) *env.Variable[T] {
	v := env.New(lc.Prefix+name, conv)
	if lc.Lookup != nil {
		v.WithLookup(lc.Lookup)
	}
	if lc.Logger != nil {
		v.WithLogger(lc.Logger)
	}
	if lc.Recorder != nil {
		v.WithRecorder(lc.Recorder)
	}
	return v
}

// Load reads the service configuration. It stops at the first variable
// that cannot be resolved, then applies defaults and validates the result.
func Load(opts ...Option) (*ServiceConfig, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	cfg := &ServiceConfig{}
	var err error

	if cfg.Name, err = Declare(lc, VarName, converter.NewString().WithMinLength(1)).
		WithDescription("Service name used in logs and metrics").
		Load(); err != nil {
		return nil, err
	}
	if cfg.Environment, err = Declare(lc, VarEnvironment, converter.NewOneOf(Environments...)).
		WithDescription("Deployment environment").
		WithFallback("development").
		Load(); err != nil {
		return nil, err
	}
	if cfg.Version, err = Declare(lc, VarVersion, converter.NewString()).
		WithFallback(version.Version).
		Load(); err != nil {
		return nil, err
	}
	if cfg.Debug, err = Declare(lc, VarDebug, converter.NewBool()).
		WithFallback(false).
		Load(); err != nil {
		return nil, err
	}

	if err := loadLogging(lc, &cfg.Logging); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadLogging fills the logging section. LOG_LEVEL has no fallback so that
// ApplyDefaults can pick one from the debug flag.
func loadLogging(lc LoaderConfig, out *logger.Config) error {
	levelVar := Declare(lc, VarLogLevel, converter.NewOneOf(logger.ValidLevels...).CaseInsensitive()).
		WithFallback("")
	level, err := levelVar.Load()
	if err != nil {
		return err
	}
	out.Level = level

	if out.Format, err = Declare(lc, VarLogFormat, converter.NewOneOf(logger.ValidFormats...)).
		WithFallback("console").
		Load(); err != nil {
		return err
	}
	if out.Output, err = Declare(lc, VarLogOutput, converter.NewOneOf(logger.ValidOutputs...)).
		WithFallback("stdout").
		Load(); err != nil {
		return err
	}
	if out.NoColor, err = Declare(lc, VarLogNoColor, converter.NewBool()).
		WithFallback(false).
		Load(); err != nil {
		return err
	}
	return nil
}
