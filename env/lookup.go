package env

import "os"

// Lookuper reads a raw value for key. The boolean distinguishes an unset key
// from one explicitly set to the empty string.
type Lookuper interface {
	Lookup(key string) (string, bool)
}

// LookupFunc adapts a function to the Lookuper interface.
type LookupFunc func(key string) (string, bool)

// Lookup implements Lookuper.
func (f LookupFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// OSLookup reads the process environment. It is the default source.
var OSLookup Lookuper = LookupFunc(os.LookupEnv)

// MapLookup is an in-memory environment snapshot.
type MapLookup map[string]string

// Lookup implements Lookuper.
func (m MapLookup) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
