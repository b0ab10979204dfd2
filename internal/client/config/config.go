package config

import "time"

// Config holds runtime settings for the csclient CLI.
//
// Fields:
//   - BaseURL: root of the versioned REST API, e.g. https://chromestatus.com/api/v0.
//   - DBPath: file of the local SQLite cache.
//   - RequestTimeout: upper bound for one API call, token refresh included.
//   - RequestsPerSecond: client-side rate limit; 0 disables it.
//   - LogFormat: text, json or zap.
//   - LogLevel: debug, info, warn or error.
//   - OnlineCheckInterval: how often the CLI checks backend reachability.
type Config struct {
	BaseURL           string
	DBPath            string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	LogFormat         string
	LogLevel          string

	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://chromestatus.com/api/v0"
	c.DBPath = "csclient.db"
	c.RequestTimeout = 15 * time.Second
	c.RequestsPerSecond = 5
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.OnlineCheckInterval = 30 * time.Second
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
