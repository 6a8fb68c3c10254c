package converter

import (
	"github.com/google/uuid"

	"github.com/kbukum/validenv/env"
)

var _ env.Converter[uuid.UUID] = UUID{}

// UUID parses RFC 4122 UUIDs.
type UUID struct{}

// NewUUID returns a UUID converter.
func NewUUID() UUID {
	return UUID{}
}

// Parse implements env.Converter.
func (UUID) Parse(raw string, ctx env.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, env.FormatError[uuid.UUID](raw, ctx, err)
	}
	return id, nil
}
