// Package config assembles runtime settings for the qrkeeper CLI from
// defaults, an optional JSON file and command-line flags, in that order of
// precedence.
package config

// Config holds runtime settings for the qrkeeper CLI.
//
// Fields:
//   - DatabaseDSN: path or DSN of the local SQLite database.
//   - EntitlementSecret: HMAC key used to verify entitlement tokens.
type Config struct {
	DatabaseDSN       string
	EntitlementSecret string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "qrkeeper.db"
	c.EntitlementSecret = ""
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
