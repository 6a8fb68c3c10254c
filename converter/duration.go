package converter

import (
	"time"

	"github.com/kbukum/validenv/env"
)

var _ env.Converter[time.Duration] = Duration{}

// Duration parses Go duration strings such as "30s" or "1h15m".
type Duration struct{}

// NewDuration returns a Duration converter.
func NewDuration() Duration {
	return Duration{}
}

// Parse implements env.Converter.
func (Duration) Parse(raw string, ctx env.Context) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, env.FormatError[time.Duration](raw, ctx, err)
	}
	return d, nil
}
