package converter

import (
	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/validation"
)

var _ env.Converter[string] = (*String)(nil)

// String accepts any value, optionally bounded in length and matched
// against a regular expression. Bounds are inclusive and counted in characters.
type String struct {
	minLength int
	maxLength int
	hasMin    bool
	hasMax    bool
	pattern   string
}

// NewString returns a String converter without length bounds.
func NewString() *String {
	return &String{}
}

// WithMinLength sets the minimum length.
func (c *String) WithMinLength(n int) *String {
	c.minLength = n
	c.hasMin = true
	return c
}

// WithMaxLength sets the maximum length.
func (c *String) WithMaxLength(n int) *String {
	c.maxLength = n
	c.hasMax = true
	return c
}

// WithPattern requires the value to match the regular expression pattern.
// Anchor it with ^ and $ to match the whole value.
func (c *String) WithPattern(pattern string) *String {
	c.pattern = pattern
	return c
}

// Parse implements env.Converter.
func (c *String) Parse(raw string, ctx env.Context) (string, error) {
	v := validation.New()
	if c.hasMin {
		v.MinLength(ctx.Key(), raw, c.minLength)
	}
	if c.hasMax {
		v.MaxLength(ctx.Key(), raw, c.maxLength)
	}
	if c.pattern != "" {
		v.Pattern(ctx.Key(), raw, c.pattern)
	}
	if appErr := v.Validate(); appErr != nil {
		return "", appErr
	}
	return raw, nil
}
