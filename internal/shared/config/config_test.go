package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.API.BaseURL != "http://localhost:8081" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("API.Timeout = %v, want 0 when BANK_API_TIMEOUT is unset", cfg.API.Timeout)
	}
	if cfg.UI.Locale != "en" {
		t.Errorf("UI.Locale = %q, want en", cfg.UI.Locale)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, StoreMemory)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.RateLimit.Rate.Limit != 100 || cfg.RateLimit.Rate.Period != time.Minute {
		t.Errorf("RateLimit = %+v, want 100 per minute", cfg.RateLimit.Rate)
	}
	if cfg.Telemetry.Environment != "development" || cfg.Telemetry.Version != "dev" {
		t.Errorf("Telemetry = %+v, want development/dev", cfg.Telemetry)
	}
	if cfg.Telemetry.SampleRatio != 1 {
		t.Errorf("Telemetry.SampleRatio = %v, want 1", cfg.Telemetry.SampleRatio)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BANK_API_URL", "http://bank.internal:9000/")
	t.Setenv("BANK_API_TIMEOUT", "5s")
	t.Setenv("UI_LOCALE", "FR")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("OTEL_ENVIRONMENT", "staging")
	t.Setenv("OTEL_SAMPLE_RATIO", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BaseURL != "http://bank.internal:9000" {
		t.Errorf("API.BaseURL = %q, trailing slash should be trimmed", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want 5s", cfg.API.Timeout)
	}
	if cfg.UI.Locale != "fr" {
		t.Errorf("UI.Locale = %q, want fr", cfg.UI.Locale)
	}
	if cfg.Store.Driver != StorePostgres {
		t.Errorf("Store.Driver = %q", cfg.Store.Driver)
	}
	if cfg.RateLimit.Rate.Limit != 10 || cfg.RateLimit.Rate.Period != time.Second {
		t.Errorf("RateLimit = %+v, want 10 per second", cfg.RateLimit.Rate)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
	if cfg.Telemetry.Environment != "staging" || cfg.Telemetry.SampleRatio != 0.25 {
		t.Errorf("Telemetry = %+v, want staging sampled at 0.25", cfg.Telemetry)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"DB_PORT", "not-a-number"},
		{"BANK_API_TIMEOUT", "soon"},
		{"RATE_LIMIT", "lots"},
		{"OTEL_SAMPLE_RATIO", "1.5"},
		{"OTEL_SAMPLE_RATIO", "half"},
		{"STORE_DRIVER", "mongo"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for %s=%q, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_TLSValidation(t *testing.T) {
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_PATH", "")
	t.Setenv("TLS_KEY_PATH", "")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for TLS enabled without cert path, got nil")
	}
}

func TestLoad_TLSValidation_MissingKeyPath(t *testing.T) {
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_PATH", "/path/to/cert")
	t.Setenv("TLS_KEY_PATH", "")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for TLS enabled without key path, got nil")
	}
}

func TestLoad_AllowedHosts(t *testing.T) {
	t.Setenv("ALLOWED_HOSTS", "example.com, api.example.com, localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cfg.Server.AllowedHosts) != 3 {
		t.Errorf("AllowedHosts length = %d, want 3", len(cfg.Server.AllowedHosts))
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("BANKFRONT_TEST_FROM_FILE=yes\nBANKFRONT_TEST_PRESET=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BANKFRONT_TEST_PRESET", "env")
	t.Cleanup(func() { os.Unsetenv("BANKFRONT_TEST_FROM_FILE") })

	if err := LoadEnvFiles(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnvFiles() failed: %v", err)
	}

	if got := os.Getenv("BANKFRONT_TEST_FROM_FILE"); got != "yes" {
		t.Errorf("BANKFRONT_TEST_FROM_FILE = %q, want yes", got)
	}
	if got := os.Getenv("BANKFRONT_TEST_PRESET"); got != "env" {
		t.Errorf("BANKFRONT_TEST_PRESET = %q, existing variables must win", got)
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		value    string
		defVal   bool
		expected bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"invalid", true, true},   // returns default
		{"invalid", false, false}, // returns default
		{"", true, true},          // empty returns default
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			key := "TEST_BOOL_ENV"
			if tt.value == "" {
				os.Unsetenv(key)
			} else {
				t.Setenv(key, tt.value)
			}

			got := getBoolEnv(key, tt.defVal)
			if got != tt.expected {
				t.Errorf("getBoolEnv(%q, %v) = %v, want %v", tt.value, tt.defVal, got, tt.expected)
			}
		})
	}
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	got := cfg.ConnectionString()
	if got != expected {
		t.Errorf("ConnectionString() = %q, want %q", got, expected)
	}
}
