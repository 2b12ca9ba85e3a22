package config

import (
	"encoding/json"
	"os"

	"printwatch/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	APIBaseURL  string `json:"api_base_url"`
	StateDBPath string `json:"state_db_path"`
	LogFile     string `json:"log_file"`
	LogLevel    string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// When no config file is given the function is a no-op. Read or unmarshal
// errors panic; the console cannot do anything useful with a config file it
// was told to use but cannot read.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
