package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidPort is returned when PORT is not an integer in 1-65535.
var ErrInvalidPort = errors.New("PORT must be a number between 1 and 65535")

// Config holds all server configuration loaded from environment variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"3000"`      // TCP port, bound on all interfaces
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"` // zerolog level name
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		var perr *envconfig.ParseError
		if errors.As(err, &perr) && perr.FieldName == "Port" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPort, perr.Value)
		}
		return nil, fmt.Errorf("failed to read environment variable configuration: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	return &cfg, nil
}

// ListenAddr is the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(c.Port))
}
