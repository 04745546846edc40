// Package config builds process configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the gateway needs at startup.
type Config struct {
	// Addr is the gateway's listen address.
	Addr string
	// UpstreamURL is the base URL of the remote case-management service.
	UpstreamURL string
	// UpstreamTimeout bounds each upstream round trip. Timeouts are a
	// transport concern; domain code never sets its own deadlines.
	UpstreamTimeout time.Duration

	// RedisURL enables the redis session store when set; empty means the
	// in-memory fallback.
	RedisURL string
	// PostgresDSN enables the postgres activity store when set; empty means
	// the in-memory fallback.
	PostgresDSN string
	// KafkaBrokers enables the activity event publisher when non-empty.
	KafkaBrokers []string
	KafkaTopic   string

	JWTSigningKey string
	SessionTTL    time.Duration

	LogLevel  string
	LogFormat string
}

// FromEnv reads GIVEGATE_* variables, applying development defaults.
func FromEnv() Config {
	cfg := Config{
		Addr:            envOr("GIVEGATE_ADDR", ":8080"),
		UpstreamURL:     envOr("GIVEGATE_UPSTREAM_URL", "http://127.0.0.1:4943"),
		UpstreamTimeout: durationOr("GIVEGATE_UPSTREAM_TIMEOUT", 15*time.Second),
		RedisURL:        os.Getenv("GIVEGATE_REDIS_URL"),
		PostgresDSN:     os.Getenv("GIVEGATE_POSTGRES_DSN"),
		KafkaTopic:      envOr("GIVEGATE_KAFKA_TOPIC", "givegate.activity"),
		JWTSigningKey:   envOr("GIVEGATE_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		SessionTTL:      durationOr("GIVEGATE_SESSION_TTL", 24*time.Hour),
		LogLevel:        envOr("GIVEGATE_LOG_LEVEL", "info"),
		LogFormat:       envOr("GIVEGATE_LOG_FORMAT", "json"),
	}

	if brokers := os.Getenv("GIVEGATE_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
