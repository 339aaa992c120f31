// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration.
type Config struct {
	SpannerDatabase string        `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/dev-instance/databases/product-catalog-db"`
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	GRPCPort        string        `envconfig:"GRPC_PORT" default:"9090"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	DefaultPageSize int           `envconfig:"DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize     int           `envconfig:"MAX_PAGE_SIZE" default:"100"`
	CORSOrigin      string        `envconfig:"CORS_ORIGIN" default:"*"`
}

// Load reads Config from the environment and validates it.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Level returns the configured logrus level.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c *Config) validate() error {
	if c.SpannerDatabase == "" {
		return fmt.Errorf("SPANNER_DATABASE must not be empty")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE (%d) must not be below DEFAULT_PAGE_SIZE (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
