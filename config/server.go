package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/ecoroute/infra/osrm"
)

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr                   string `json:"addr"`
	ReadTimeoutSeconds     int    `json:"read_timeout_seconds"`
	ShutdownTimeoutSeconds int    `json:"shutdown_timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.ReadTimeoutSeconds == 0 {
		c.ReadTimeoutSeconds = 10
	}
	if c.ShutdownTimeoutSeconds == 0 {
		c.ShutdownTimeoutSeconds = 5
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	if c.ReadTimeoutSeconds < 0 || c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

// ReadTimeout returns the request read timeout.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown deadline.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// DefaultModelPath is where the trainer writes and the server reads the model.
const DefaultModelPath = "models/eco_model.json"

// ModelConfig locates the model artifact.
type ModelConfig struct {
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *ModelConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = DefaultModelPath
	}
}

// Validate checks mandatory fields.
func (c ModelConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// RoutingConfig configures the route comparison endpoint.
type RoutingConfig struct {
	// Disabled removes POST /api/route.
	Disabled bool        `json:"disabled"`
	OSRM     osrm.Config `json:"osrm"`
}

// SetDefaults applies sane defaults.
func (c *RoutingConfig) SetDefaults() {
	if c.OSRM.BaseURL == "" {
		c.OSRM.BaseURL = osrm.DefaultBaseURL
	}
	if c.OSRM.TimeoutSeconds == 0 {
		c.OSRM.TimeoutSeconds = 10
	}
}

// Validate checks mandatory fields.
func (c RoutingConfig) Validate() error {
	if c.OSRM.TimeoutSeconds < 0 {
		return fmt.Errorf("osrm timeout must not be negative")
	}
	return nil
}
