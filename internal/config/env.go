package config

import "os"

// Environment variable names recognized by parseEnv.
const (
	EnvAPIBaseURL  = "PRINTWATCH_API_URL"
	EnvStateDBPath = "PRINTWATCH_STATE_DB"
	EnvLogFile     = "PRINTWATCH_LOG_FILE"
	EnvLogLevel    = "PRINTWATCH_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the environment. Unset or empty
// variables leave the current value in place.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvStateDBPath); v != "" {
		cfg.StateDBPath = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
