package config

import (
	"reflect"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_DIR", "LOG_LEVEL", "LOG_FORMAT",
		"IDENTITY_JWT_SECRET", "IDENTITY_JWT_PUBLIC_KEY", "SESSION_TTL",
		"STORAGE_DRIVER", "DATABASE_URL",
		"CONTENT_API_BASE_URL", "CONTENT_API_TOKEN", "CONTENT_API_TIMEOUT",
		"KAFKA_BROKERS", "KAFKA_GROUP_ID", "KAFKA_ENTRYPOINT_TOPICS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("IDENTITY_JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sdui")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Storage.Driver != StorageDriverPostgres {
		t.Fatalf("driver = %q", cfg.Storage.Driver)
	}
	if cfg.Session.TTL != 30*24*time.Hour {
		t.Fatalf("session ttl = %s", cfg.Session.TTL)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("logging defaults = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
	if !reflect.DeepEqual(cfg.Kafka.Topics, []string{"sdui.entrypoint.updated"}) {
		t.Fatalf("kafka topics = %v", cfg.Kafka.Topics)
	}
	if cfg.Kafka.Brokers != nil {
		t.Fatalf("brokers should default to none, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoadRESTDriver(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("IDENTITY_JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "REST")
	t.Setenv("CONTENT_API_BASE_URL", "http://content.internal")
	t.Setenv("CONTENT_API_TIMEOUT", "3s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,")
	t.Setenv("SESSION_TTL", "12h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Driver != StorageDriverREST {
		t.Fatalf("driver = %q", cfg.Storage.Driver)
	}
	if cfg.Storage.REST.Timeout != 3*time.Second {
		t.Fatalf("rest timeout = %s", cfg.Storage.REST.Timeout)
	}
	if cfg.Session.TTL != 12*time.Hour {
		t.Fatalf("session ttl = %s", cfg.Session.TTL)
	}
	if !reflect.DeepEqual(cfg.Kafka.Brokers, []string{"kafka-1:9092", "kafka-2:9092"}) {
		t.Fatalf("brokers = %v", cfg.Kafka.Brokers)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"postgres driver without url", map[string]string{"IDENTITY_JWT_SECRET": "secret"}},
		{"rest driver without base url", map[string]string{"IDENTITY_JWT_SECRET": "secret", "STORAGE_DRIVER": "rest"}},
		{"unknown driver", map[string]string{"IDENTITY_JWT_SECRET": "secret", "STORAGE_DRIVER": "dynamo", "DATABASE_URL": "x"}},
		{"no identity key material", map[string]string{"DATABASE_URL": "postgres://localhost/sdui"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestEnvDurationIgnoresInvalidValues(t *testing.T) {
	t.Setenv("CONTENT_API_TIMEOUT", "soon")
	if got := envDuration("CONTENT_API_TIMEOUT", 10*time.Second); got != 10*time.Second {
		t.Fatalf("duration = %s, want fallback", got)
	}
	t.Setenv("CONTENT_API_TIMEOUT", "-5s")
	if got := envDuration("CONTENT_API_TIMEOUT", 10*time.Second); got != 10*time.Second {
		t.Fatalf("negative duration = %s, want fallback", got)
	}
}
