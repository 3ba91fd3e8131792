// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the backend record store.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabasePath: path of the SQLite database file.
//   - ShutdownTimeout: how long a graceful shutdown may take.
type Config struct {
	EndpointAddr    string
	DatabasePath    string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabasePath = "data/mindful.db"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
