package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api/v1", c.APIBaseURL)
	assert.Equal(t, "printwatch.db", c.StateDBPath)
	assert.Equal(t, "", c.LogFile)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "printwatch.db", cfg.StateDBPath)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://api.example.com/api/v1")
	t.Setenv(EnvLogLevel, "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com/api/v1", c.APIBaseURL)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "printwatch.db", c.StateDBPath, "unset variables must not override")
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin", "-a", "https://flagged.example.com/api/v1", "-d", "alt.db"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://flagged.example.com/api/v1", c.APIBaseURL)
	assert.Equal(t, "alt.db", c.StateDBPath)
}
