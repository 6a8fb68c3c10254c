package config

import (
	"fmt"

	"github.com/kbukum/validenv/logger"
	"github.com/kbukum/validenv/validation"
)

// Deployment environments accepted in ServiceConfig.Environment.
var Environments = []string{"development", "staging", "production"}

// ServiceConfig contains the essential configuration fields every service needs.
// Projects extend this by embedding it and declaring their own variables.
type ServiceConfig struct {
	Name        string        `yaml:"name" validate:"required"`
	Environment string        `yaml:"environment" validate:"oneof=development staging production"`
	Version     string        `yaml:"version"`
	Debug       bool          `yaml:"debug"`
	Logging     logger.Config `yaml:"logging"`
}

// ApplyDefaults applies default values to the base configuration.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
func (c *ServiceConfig) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// NewLogger creates a logger for the service from its logging configuration.
func (c *ServiceConfig) NewLogger() *logger.Logger {
	return logger.New(&c.Logging, c.Name)
}
