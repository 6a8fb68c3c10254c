package env

import (
	"fmt"
	"sync"

	"github.com/kbukum/validenv/errors"
	"github.com/kbukum/validenv/logger"
)

// LoggerName is the registry name of the logger used for fallback diagnostics.
const LoggerName = "env"

// Variable is a typed environment variable declaration.
//
// Key and converter are fixed by New. Description, fallback and the
// collaborators are set with the With* methods before Load is called.
type Variable[T any] struct {
	key       string
	converter Converter[T]

	description string
	fallback    T
	hasFallback bool

	lookup   Lookuper
	log      *logger.Logger
	recorder Recorder

	mu      sync.RWMutex
	value   T
	loaded  bool
	outcome Outcome
}

// New declares a variable for key parsed by converter.
// It panics if key is empty or converter is nil.
func New[T any](key string, converter Converter[T]) *Variable[T] {
	if key == "" {
		panic("env: variable key must not be empty")
	}
	if converter == nil {
		panic(fmt.Sprintf("env: variable %q has no converter", key))
	}
	return &Variable[T]{key: key, converter: converter}
}

// WithDescription sets the human-readable description shown in errors.
func (v *Variable[T]) WithDescription(description string) *Variable[T] {
	v.description = description
	return v
}

// WithFallback sets the value used when the key is unset or invalid.
// A zero value is a valid fallback.
func (v *Variable[T]) WithFallback(fallback T) *Variable[T] {
	v.fallback = fallback
	v.hasFallback = true
	return v
}

// WithLookup replaces the process environment as the value source.
func (v *Variable[T]) WithLookup(lookup Lookuper) *Variable[T] {
	v.lookup = lookup
	return v
}

// WithLogger sets the logger receiving fallback diagnostics.
func (v *Variable[T]) WithLogger(l *logger.Logger) *Variable[T] {
	v.log = l
	return v
}

// WithRecorder sets a recorder notified of every load outcome.
func (v *Variable[T]) WithRecorder(r Recorder) *Variable[T] {
	v.recorder = r
	return v
}

// Key returns the environment variable name.
func (v *Variable[T]) Key() string { return v.key }

// Description returns the description, or "" if none was set.
func (v *Variable[T]) Description() string { return v.description }

// Fallback returns the fallback and whether one is configured.
func (v *Variable[T]) Fallback() (T, bool) { return v.fallback, v.hasFallback }

// Value returns the loaded value. The boolean is false until Load has
// returned a value, and again after a Load call that failed.
func (v *Variable[T]) Value() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.loaded
}

// Outcome returns how the last Load call resolved.
func (v *Variable[T]) Outcome() Outcome {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.outcome
}

// Load resolves the variable.
//
// An unset key yields the fallback, or a MISSING_VARIABLE error when none is
// configured. A set key is parsed by the converter; format and constraint
// failures yield the fallback when one is configured and are returned
// otherwise. Each call reads the source again and overwrites the stored value.
func (v *Variable[T]) Load() (T, error) {
	raw, ok := v.source().Lookup(v.key)
	if !ok {
		if v.hasFallback {
			v.logger().Warn(
				fmt.Sprintf("Environment variable '%s' is not available. Using fallback '%v' instead.", v.key, v.fallback),
				v.fallbackFields(),
			)
			return v.store(v.fallback, OutcomeFallbackMissing), nil
		}
		return v.fail(errors.MissingVariable(v.key, TypeName[T](), v.description))
	}

	parsed, err := v.converter.Parse(raw, v.context())
	if err == nil {
		return v.store(parsed, OutcomeResolved), nil
	}

	err = v.normalize(raw, err)
	if v.hasFallback && errors.IsFallbackEligible(err) {
		v.logger().WithError(err).Warn(
			fmt.Sprintf("Failed to parse environment variable '%s'. Using fallback '%v' instead.", v.key, v.fallback),
			v.fallbackFields(),
		)
		return v.store(v.fallback, OutcomeFallbackInvalid), nil
	}
	return v.fail(err)
}

// MustLoad is like Load but panics if the variable cannot be resolved.
// It simplifies package-level declarations.
func (v *Variable[T]) MustLoad() T {
	val, err := v.Load()
	if err != nil {
		panic(err)
	}
	return val
}

// normalize keeps taxonomy errors as they are and turns any other error
// returned by a converter into an INVALID_FORMAT failure wrapping it.
func (v *Variable[T]) normalize(raw string, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return FormatError[T](raw, v.context(), err)
}

func (v *Variable[T]) store(val T, outcome Outcome) T {
	v.mu.Lock()
	v.value = val
	v.loaded = true
	v.outcome = outcome
	v.mu.Unlock()

	v.record(outcome)
	return val
}

func (v *Variable[T]) fail(err error) (T, error) {
	var zero T
	v.mu.Lock()
	v.value = zero
	v.loaded = false
	v.outcome = OutcomeFailed
	v.mu.Unlock()

	v.record(OutcomeFailed)
	return zero, err
}

func (v *Variable[T]) record(outcome Outcome) {
	if v.recorder != nil {
		v.recorder.RecordLoad(v.key, outcome)
	}
}

func (v *Variable[T]) context() Context {
	return view{key: v.key, description: v.description}
}

func (v *Variable[T]) source() Lookuper {
	if v.lookup != nil {
		return v.lookup
	}
	return OSLookup
}

func (v *Variable[T]) logger() *logger.Logger {
	if v.log != nil {
		return v.log
	}
	return logger.Get(LoggerName)
}

func (v *Variable[T]) fallbackFields() map[string]interface{} {
	return logger.Fields(
		logger.FieldKey, v.key,
		logger.FieldFallback, fmt.Sprint(v.fallback),
	)
}
