package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverREST     = "rest"
)

type ServerConfig struct {
	Port string
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type SecurityConfig struct {
	// IdentityJWTSecret verifies HS256 identity tokens (development).
	IdentityJWTSecret string
	// IdentityJWTPublicKey is the PEM-encoded RS256 key of the identity provider.
	IdentityJWTPublicKey string
}

type SessionConfig struct {
	TTL time.Duration
}

type RESTStorageConfig struct {
	BaseURL      string
	ServiceToken string
	Timeout      time.Duration
}

type StorageConfig struct {
	// Driver selects the section-record backend: postgres or rest.
	Driver      string
	PostgresURL string
	REST        RESTStorageConfig
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Security SecurityConfig
	Session  SessionConfig
	Storage  StorageConfig
	Kafka    KafkaConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("PORT", "8080"),
		},
		Logging: LoggingConfig{
			Directory: envOr("LOG_DIR", "./logs"),
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
		},
		Security: SecurityConfig{
			IdentityJWTSecret:    os.Getenv("IDENTITY_JWT_SECRET"),
			IdentityJWTPublicKey: os.Getenv("IDENTITY_JWT_PUBLIC_KEY"),
		},
		Session: SessionConfig{
			TTL: envDuration("SESSION_TTL", 30*24*time.Hour),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(envOr("STORAGE_DRIVER", StorageDriverPostgres)),
			PostgresURL: os.Getenv("DATABASE_URL"),
			REST: RESTStorageConfig{
				BaseURL:      os.Getenv("CONTENT_API_BASE_URL"),
				ServiceToken: os.Getenv("CONTENT_API_TOKEN"),
				Timeout:      envDuration("CONTENT_API_TIMEOUT", 10*time.Second),
			},
		},
		Kafka: KafkaConfig{
			Brokers: envCSV("KAFKA_BROKERS"),
			GroupID: envOr("KAFKA_GROUP_ID", "sdui-gateway"),
			Topics:  envCSVOr("KAFKA_ENTRYPOINT_TOPICS", []string{"sdui.entrypoint.updated"}),
		},
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Storage.PostgresURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required with STORAGE_DRIVER=%s", StorageDriverPostgres)
		}
	case StorageDriverREST:
		if cfg.Storage.REST.BaseURL == "" {
			return nil, fmt.Errorf("CONTENT_API_BASE_URL is required with STORAGE_DRIVER=%s", StorageDriverREST)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	if cfg.Security.IdentityJWTSecret == "" && cfg.Security.IdentityJWTPublicKey == "" {
		return nil, fmt.Errorf("IDENTITY_JWT_SECRET or IDENTITY_JWT_PUBLIC_KEY must be set")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envCSV(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func envCSVOr(key string, fallback []string) []string {
	if values := envCSV(key); len(values) > 0 {
		return values
	}
	return fallback
}
