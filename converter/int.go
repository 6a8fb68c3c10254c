package converter

import (
	"strconv"

	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/validation"
)

// MaxPort is the largest TCP/UDP port number.
const MaxPort = 65535

var _ env.Converter[int] = (*Int)(nil)

// Int parses base-10 integers, optionally bounded.
type Int struct {
	minVal int
	maxVal int
	hasMin bool
	hasMax bool
}

// NewInt returns an Int converter without bounds.
func NewInt() *Int {
	return &Int{}
}

// NewPort returns an Int converter rejecting values above MaxPort.
func NewPort() *Int {
	return NewInt().WithMax(MaxPort)
}

// WithMin sets the inclusive lower bound.
func (c *Int) WithMin(n int) *Int {
	c.minVal = n
	c.hasMin = true
	return c
}

// WithMax sets the inclusive upper bound.
func (c *Int) WithMax(n int) *Int {
	c.maxVal = n
	c.hasMax = true
	return c
}

// Parse implements env.Converter.
func (c *Int) Parse(raw string, ctx env.Context) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, env.FormatError[int](raw, ctx, err)
	}

	v := validation.New()
	switch {
	case c.hasMin && c.hasMax:
		v.Range(ctx.Key(), n, c.minVal, c.maxVal)
	case c.hasMin:
		v.Min(ctx.Key(), n, c.minVal)
	case c.hasMax:
		v.Max(ctx.Key(), n, c.maxVal)
	}
	if appErr := v.Validate(); appErr != nil {
		return 0, appErr
	}
	return n, nil
}
