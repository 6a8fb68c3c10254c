package env

// Outcome describes how a Load call resolved.
type Outcome string

const (
	// OutcomeNone means Load has not run.
	OutcomeNone Outcome = ""
	// OutcomeResolved means the converter produced the value.
	OutcomeResolved Outcome = "resolved"
	// OutcomeFallbackMissing means the key was unset and the fallback was used.
	OutcomeFallbackMissing Outcome = "fallback_missing"
	// OutcomeFallbackInvalid means parsing failed and the fallback was used.
	OutcomeFallbackInvalid Outcome = "fallback_invalid"
	// OutcomeFailed means Load returned an error.
	OutcomeFailed Outcome = "failed"
)

// UsedFallback reports whether the fallback value was substituted.
func (o Outcome) UsedFallback() bool {
	return o == OutcomeFallbackMissing || o == OutcomeFallbackInvalid
}

// Recorder observes load outcomes, for example to export metrics.
type Recorder interface {
	RecordLoad(key string, outcome Outcome)
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(key string, outcome Outcome)

// RecordLoad implements Recorder.
func (f RecorderFunc) RecordLoad(key string, outcome Outcome) {
	f(key, outcome)
}
