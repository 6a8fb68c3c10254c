package converter

import (
	"strings"

	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/validation"
)

var _ env.Converter[string] = (*OneOf)(nil)

// OneOf accepts only values from a fixed set.
type OneOf struct {
	allowed  []string
	foldCase bool
}

// NewOneOf returns a converter accepting exactly the given values.
func NewOneOf(allowed ...string) *OneOf {
	return &OneOf{allowed: allowed}
}

// CaseInsensitive makes matching ignore case. Parse then returns the
// allowed value as declared, not as written in the environment.
func (c *OneOf) CaseInsensitive() *OneOf {
	c.foldCase = true
	return c
}

// Allowed returns the accepted values.
func (c *OneOf) Allowed() []string {
	return c.allowed
}

// Parse implements env.Converter.
func (c *OneOf) Parse(raw string, ctx env.Context) (string, error) {
	v := validation.New()
	if c.foldCase {
		v.OneOfFold(ctx.Key(), raw, c.allowed)
	} else {
		v.OneOf(ctx.Key(), raw, c.allowed)
	}
	if appErr := v.Validate(); appErr != nil {
		return "", appErr
	}

	if c.foldCase {
		for _, a := range c.allowed {
			if strings.EqualFold(raw, a) {
				return a, nil
			}
		}
	}
	return raw, nil
}
