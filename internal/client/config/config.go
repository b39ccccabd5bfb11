// Package config handles configuration for the CLI client component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the fileblock CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP endpoint.
//   - DatabaseDSN: path of the local sqlite file holding client state
//     (the generated userId and the cached policy snapshot).
type Config struct {
	ServerEndpointAddr string
	DatabaseDSN        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.DatabaseDSN = "fileblock.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
