package converter

import (
	"strconv"

	"github.com/kbukum/validenv/env"
)

var _ env.Converter[float64] = Float{}

// Float parses 64-bit floating point numbers.
type Float struct{}

// NewFloat returns a Float converter.
func NewFloat() Float {
	return Float{}
}

// Parse implements env.Converter.
func (Float) Parse(raw string, ctx env.Context) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, env.FormatError[float64](raw, ctx, err)
	}
	return f, nil
}
