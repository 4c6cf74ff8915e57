package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg := Load()

	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "https://api.perplexity.ai", cfg.Endpoint)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.LogBuffer)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Setenv("PERPLEXITY_API_KEY", "pplx-secret")
	t.Setenv("PORT", "8088")
	t.Setenv("HOSTINSIGHT_ENDPOINT", "http://localhost:9999")
	t.Setenv("HOSTINSIGHT_TIMEOUT_SECONDS", "7")

	cfg := Load()

	assert.Equal(t, "pplx-secret", cfg.APIKey)
	assert.Equal(t, 8088, cfg.Port)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)
	assert.Equal(t, 7, cfg.TimeoutSeconds)
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 7*time.Second, Config{TimeoutSeconds: 7}.Timeout())

	// Zero or negative falls back to the default bound rather than
	// disabling the timeout outright.
	assert.Equal(t, 30*time.Second, Config{}.Timeout())
	assert.Equal(t, 30*time.Second, Config{TimeoutSeconds: -1}.Timeout())
}
