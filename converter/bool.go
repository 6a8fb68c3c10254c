package converter

import (
	"strings"

	"github.com/kbukum/validenv/env"
)

var _ env.Converter[bool] = Bool{}

var boolLiterals = map[string]bool{
	"true": true, "1": true, "t": true, "yes": true,
	"false": false, "0": false, "f": false, "no": false,
}

// Bool accepts true/1/t/yes and false/0/f/no, ignoring case.
type Bool struct{}

// NewBool returns a Bool converter.
func NewBool() Bool {
	return Bool{}
}

// Parse implements env.Converter.
func (Bool) Parse(raw string, ctx env.Context) (bool, error) {
	b, ok := boolLiterals[strings.ToLower(raw)]
	if !ok {
		return false, env.FormatError[bool](raw, ctx, nil)
	}
	return b, nil
}
