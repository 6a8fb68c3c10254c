package converter

import (
	"net/url"

	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/validation"
)

var _ env.Converter[*url.URL] = URI{}

// URI parses absolute URIs. Relative references are rejected.
type URI struct{}

// NewURI returns a URI converter.
func NewURI() URI {
	return URI{}
}

// Parse implements env.Converter.
func (URI) Parse(raw string, ctx env.Context) (*url.URL, error) {
	if err := validation.Var(raw, "url"); err != nil {
		return nil, env.FormatError[*url.URL](raw, ctx, err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, env.FormatError[*url.URL](raw, ctx, err)
	}
	return u, nil
}
