// Package config loads the storefront configuration from a TOML file with
// environment overrides. Every field has a sensible default, so no config
// file is required for local use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	// BackendURL is the base URL of the benjour REST backend.
	BackendURL string `toml:"backend_url"`
	// SessionFile overrides the default session file location.
	SessionFile string `toml:"session_file"`

	// PollIntervalSeconds is the admin order watch poll interval.
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	// CountdownSeconds is the auto-accept countdown for a surfaced order.
	CountdownSeconds int `toml:"countdown_seconds"`

	// DatabaseURL enables the PostgreSQL notification audit trail when set.
	DatabaseURL string `toml:"database_url"`

	// KafkaBrokers and KafkaTopic enable the notification event feed when
	// both are set.
	KafkaBrokers []string `toml:"kafka_brokers"`
	KafkaTopic   string   `toml:"kafka_topic"`
}

const (
	defaultBackendURL  = "http://localhost:8080"
	defaultPollSeconds = 10
	defaultCountdown   = 30
	defaultKafkaTopic  = "benjour-admin-notifications"
)

// Load reads the config file at path (missing file means defaults), then
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		BackendURL:          defaultBackendURL,
		PollIntervalSeconds: defaultPollSeconds,
		CountdownSeconds:    defaultCountdown,
		KafkaTopic:          defaultKafkaTopic,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.BackendURL = getEnv("BENJOUR_BACKEND_URL", cfg.BackendURL)
	cfg.SessionFile = getEnv("BENJOUR_SESSION_FILE", cfg.SessionFile)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", cfg.KafkaTopic)
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.PollIntervalSeconds < 1 {
		cfg.PollIntervalSeconds = defaultPollSeconds
	}
	if cfg.CountdownSeconds < 1 {
		cfg.CountdownSeconds = defaultCountdown
	}

	return cfg, nil
}

// PollInterval returns the watch poll interval as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Countdown returns the auto-accept countdown as a duration.
func (c Config) Countdown() time.Duration {
	return time.Duration(c.CountdownSeconds) * time.Second
}

// FeedEnabled reports whether the Kafka notification feed is configured.
func (c Config) FeedEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaTopic != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
