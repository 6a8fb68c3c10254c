package converter

import (
	"net/mail"

	"github.com/kbukum/validenv/env"
)

var _ env.Converter[*mail.Address] = Email{}

// Email parses an RFC 5322 address, with or without a display name.
// Dotless domains such as "admin@localhost" and quoted local parts are valid.
type Email struct{}

// NewEmail returns an Email converter.
func NewEmail() Email {
	return Email{}
}

// Parse implements env.Converter.
func (Email) Parse(raw string, ctx env.Context) (*mail.Address, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return nil, env.FormatError[*mail.Address](raw, ctx, err)
	}
	return addr, nil
}
