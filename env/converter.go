package env

import (
	"reflect"

	"github.com/kbukum/validenv/errors"
)

// Converter parses a raw environment value into T.
//
// Implementations return FormatError when raw cannot be read as T at all and
// errors.ConstraintViolation when it can but breaks a converter rule.
type Converter[T any] interface {
	Parse(raw string, ctx Context) (T, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc[T any] func(raw string, ctx Context) (T, error)

// Parse implements Converter.
func (f ConverterFunc[T]) Parse(raw string, ctx Context) (T, error) {
	return f(raw, ctx)
}

// Context is the read-only view of a declaration handed to converters.
type Context interface {
	Key() string
	Description() string
}

type view struct {
	key         string
	description string
}

func (v view) Key() string         { return v.key }
func (v view) Description() string { return v.description }

// NewContext returns a Context for key and description. Converters are
// normally invoked by Load; this is for calling Parse directly.
func NewContext(key, description string) Context {
	return view{key: key, description: description}
}

// FormatError reports that raw could not be converted to T. cause may be nil.
func FormatError[T any](raw string, ctx Context, cause error) *errors.AppError {
	return errors.InvalidFormat(ctx.Key(), raw, TypeName[T](), ctx.Description(), cause)
}

// TypeName returns the name of T used in diagnostics, with pointer
// indirection removed ("int", "mail.Address", "url.URL").
func TypeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
