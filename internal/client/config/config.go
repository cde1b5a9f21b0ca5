// Package config loads runtime settings for the hoot client CLI, layering
// defaults, an optional JSON file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the hoot client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the hoot backend, e.g. "http://localhost:3000".
//   - RequestTimeout: per-request timeout applied by the gateway.
//   - DatabasePath: path of the local SQLite credential database.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DatabasePath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "hoot.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
