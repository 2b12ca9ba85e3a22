// Package config assembles runtime settings for the printwatch console.
// Sources are applied in order: built-in defaults, a JSON config file
// (-c/-config), environment variables, then command-line flags. Later
// sources take precedence.
package config

// Config holds runtime settings for the console.
//
// Fields:
//   - APIBaseURL: base URL of the PrinterMonitor backend, including the
//     version prefix. Fixed at process start and never mutated afterwards.
//   - StateDBPath: path of the local sqlite database holding the bearer
//     token cache.
//   - LogFile: optional path of a rotating log file; empty logs to stderr.
//   - LogLevel: minimum level for emitted log records (debug/info/warn/error).
type Config struct {
	APIBaseURL  string
	StateDBPath string
	LogFile     string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.StateDBPath = "printwatch.db"
	c.LogFile = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was named), the environment, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
