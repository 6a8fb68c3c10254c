package util

import (
	"fmt"
	"strconv"
	"strings"
)

var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize parses a human-readable size string (e.g. "10MB", "512KB", "2GB",
// "1024") into bytes. Units are binary and case-insensitive.
func ParseSize(s string) (int64, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	if in == "" {
		return 0, fmt.Errorf("empty size")
	}

	var multiplier int64 = 1
	for _, u := range sizeUnits {
		if strings.HasSuffix(in, u.suffix) {
			multiplier = u.multiplier
			in = strings.TrimSpace(strings.TrimSuffix(in, u.suffix))
			break
		}
	}

	n, err := strconv.ParseInt(in, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	if n > (1<<63-1)/multiplier {
		return 0, fmt.Errorf("size %q overflows int64", s)
	}
	return n * multiplier, nil
}
