package metrics

import (
	"fmt"
	"net"
	"strings"

	"github.com/kilianp07/ecoroute/core/factory"
)

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddr is the listen address of the /metrics endpoint. Empty
	// disables the endpoint.
	PrometheusAddr string `json:"prometheus_addr"`
}

// SetDefaults normalises sink type names.
func (c *Config) SetDefaults() {
	for i := range c.Sinks {
		c.Sinks[i].Type = strings.ToLower(strings.TrimSpace(c.Sinks[i].Type))
	}
}

// Validate checks that every sink names a type and that the Prometheus
// address is a host:port pair.
func (c Config) Validate() error {
	for i, s := range c.Sinks {
		if s.Type == "" {
			return fmt.Errorf("sinks[%d]: type is required", i)
		}
	}
	if c.PrometheusAddr != "" {
		if _, _, err := net.SplitHostPort(c.PrometheusAddr); err != nil {
			return fmt.Errorf("prometheus_addr: %w", err)
		}
	}
	return nil
}
