package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
)

const (
	// DefaultPort is used when PORT is unset or not a usable TCP port.
	DefaultPort = 8080

	// BindHost is the interface the service listens on.
	BindHost = "0.0.0.0"
)

// Config holds runtime configuration read from the process environment.
// The managed runtime assigns the port through PORT.
type Config struct {
	RawPort string `env:"PORT"`
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads configuration from the given environment instead of the
// process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Port returns the configured port. Values that are not a decimal integer
// in 1-65535 are treated as unset and yield DefaultPort.
func (c *Config) Port() int {
	p, err := strconv.Atoi(c.RawPort)
	if err != nil || p < 1 || p > 65535 {
		return DefaultPort
	}
	return p
}

// Addr returns the listen address, e.g. "0.0.0.0:8080".
func (c *Config) Addr() string {
	return net.JoinHostPort(BindHost, strconv.Itoa(c.Port()))
}
