package logger

import (
	"fmt"
	"io"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Output    string `yaml:"output"`
	NoColor   bool   `yaml:"no_color"`
	Timestamp bool   `yaml:"timestamp"`
	Caller    bool   `yaml:"caller"`

	// Writer overrides Output when set.
	Writer io.Writer `yaml:"-"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if !contains(ValidLevels, c.Level) {
		return fmt.Errorf("logging.level must be one of %v (got: %s)", ValidLevels, c.Level)
	}
	if !contains(ValidFormats, c.Format) {
		return fmt.Errorf("logging.format must be one of %v (got: %s)", ValidFormats, c.Format)
	}
	if c.Writer == nil && !contains(ValidOutputs, c.Output) {
		return fmt.Errorf("logging.output must be one of %v (got: %s)", ValidOutputs, c.Output)
	}
	return nil
}

// Accepted values for Config fields.
var (
	ValidLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	ValidFormats = []string{"json", "console", "text"}
	ValidOutputs = []string{"stdout", "stderr"}
)

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
