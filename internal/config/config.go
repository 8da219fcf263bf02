package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix             = "WAITBOARD"
	defaultTimeoutMillis  = 10000
	defaultMaxAttempts    = 3
	defaultBackoffMillis  = 1000
	defaultDebounceMillis = 300
	defaultLogLevel       = "info"
)

// AppConfig captures runtime configuration for the waitboard viewer.
type AppConfig struct {
	FeedURL        string
	AttemptTimeout time.Duration
	MaxAttempts    int
	BackoffBase    time.Duration
	DebounceDelay  time.Duration
	LogLevel       string
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("feed.url", "")
	configViper.SetDefault("fetch.timeout_ms", defaultTimeoutMillis)
	configViper.SetDefault("fetch.max_attempts", defaultMaxAttempts)
	configViper.SetDefault("fetch.backoff_ms", defaultBackoffMillis)
	configViper.SetDefault("debounce.delay_ms", defaultDebounceMillis)
	configViper.SetDefault("log.level", defaultLogLevel)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		FeedURL:        configViper.GetString("feed.url"),
		AttemptTimeout: time.Duration(configViper.GetInt("fetch.timeout_ms")) * time.Millisecond,
		MaxAttempts:    configViper.GetInt("fetch.max_attempts"),
		BackoffBase:    time.Duration(configViper.GetInt("fetch.backoff_ms")) * time.Millisecond,
		DebounceDelay:  time.Duration(configViper.GetInt("debounce.delay_ms")) * time.Millisecond,
		LogLevel:       configViper.GetString("log.level"),
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.FeedURL) == "" {
		return fmt.Errorf("feed.url is required")
	}
	if c.AttemptTimeout <= 0 {
		return fmt.Errorf("fetch.timeout_ms must be positive")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("fetch.max_attempts must be at least 1")
	}
	if c.BackoffBase <= 0 {
		return fmt.Errorf("fetch.backoff_ms must be positive")
	}
	return nil
}
