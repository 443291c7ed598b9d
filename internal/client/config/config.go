// Package config holds runtime settings for the veriscan CLI and the layered
// loading logic: defaults, then a JSON file, then environment variables,
// then command-line flags, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the veriscan CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the remote verification service.
//   - RequestTimeout: transport-level timeout for one remote call.
//   - StorePath: sqlite file holding the persisted token and cached profile.
//   - SnapshotLimit: upper bound on records fetched by one activity refresh.
type Config struct {
	ServerBaseURL  string        `env:"VERISCAN_SERVER_URL" json:"server_base_url"`
	RequestTimeout time.Duration `env:"VERISCAN_REQUEST_TIMEOUT"`
	StorePath      string        `env:"VERISCAN_STORE_PATH" json:"store_path"`
	SnapshotLimit  int           `env:"VERISCAN_SNAPSHOT_LIMIT" json:"snapshot_limit"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.StorePath = "veriscan.db"
	c.SnapshotLimit = 1000
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
