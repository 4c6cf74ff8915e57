package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults. The port default mirrors the service this replaced.
const (
	defaultPort           = 5000
	defaultEndpoint       = "https://api.perplexity.ai"
	defaultTimeoutSeconds = 30
	defaultLogLevel       = "INFO"
	defaultLogBuffer      = 1000
)

// Config is the process configuration. It is resolved once at startup and
// handed to the components explicitly; nothing reads the environment at
// request time.
type Config struct {
	// APIKey is the completion-API credential. An empty key is not an
	// error here: its absence surfaces as an upstream authentication
	// failure, which the summarizer folds into the summary text.
	APIKey string

	// Port is the HTTP listen port.
	Port int

	// Endpoint is the completion-API base URL.
	Endpoint string

	// TimeoutSeconds bounds the outbound summarization call.
	TimeoutSeconds int

	LogLevel  string
	LogBuffer int
}

// Load resolves configuration from flags (bound by the CLI) and the
// environment. PERPLEXITY_API_KEY and PORT are honored directly; everything
// is also reachable under the HOSTINSIGHT_ prefix.
func Load() Config {
	viper.SetEnvPrefix("HOSTINSIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("api-key", "PERPLEXITY_API_KEY", "HOSTINSIGHT_API_KEY")
	_ = viper.BindEnv("port", "PORT", "HOSTINSIGHT_PORT")
	_ = viper.BindEnv("endpoint", "HOSTINSIGHT_ENDPOINT")
	_ = viper.BindEnv("timeout-seconds", "HOSTINSIGHT_TIMEOUT_SECONDS")
	_ = viper.BindEnv("log-level", "HOSTINSIGHT_LOG_LEVEL")

	viper.SetDefault("port", defaultPort)
	viper.SetDefault("endpoint", defaultEndpoint)
	viper.SetDefault("timeout-seconds", defaultTimeoutSeconds)
	viper.SetDefault("log-level", defaultLogLevel)
	viper.SetDefault("log-buffer", defaultLogBuffer)

	return Config{
		APIKey:         viper.GetString("api-key"),
		Port:           viper.GetInt("port"),
		Endpoint:       viper.GetString("endpoint"),
		TimeoutSeconds: viper.GetInt("timeout-seconds"),
		LogLevel:       viper.GetString("log-level"),
		LogBuffer:      viper.GetInt("log-buffer"),
	}
}

// Timeout returns the outbound call timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
