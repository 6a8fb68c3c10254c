package converter

import (
	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/util"
)

var _ env.Converter[int64] = ByteSize{}

// ByteSize parses sizes such as "512KB", "10MB" or "1024" into bytes.
// Units are binary (1KB = 1024 bytes).
type ByteSize struct{}

// NewByteSize returns a ByteSize converter.
func NewByteSize() ByteSize {
	return ByteSize{}
}

// Parse implements env.Converter.
func (ByteSize) Parse(raw string, ctx env.Context) (int64, error) {
	n, err := util.ParseSize(raw)
	if err != nil {
		return 0, env.FormatError[int64](raw, ctx, err)
	}
	return n, nil
}
