package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

type Config struct {
	Server    ServerConfig
	API       APIConfig
	UI        UIConfig
	TLS       TLSConfig
	Telemetry TelemetryConfig
	Store     StoreConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	AllowedHosts []string
}

// APIConfig locates the back-office REST API the web front-end calls.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type UIConfig struct {
	Locale string
}

type TLSConfig struct {
	Enabled      bool
	CertPath     string
	KeyPath      string
	RedirectHTTP bool
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	Environment  string
	Version      string
	OTLPEndpoint string
	MetricsPort  string
	// SampleRatio is the fraction of new traces kept, from 0 to 1.
	SampleRatio float64
}

// StoreConfig selects the dev API's storage: "memory" or "postgres".
type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RateLimitConfig struct {
	Rate limiter.Rate
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// LoadEnvFiles reads .env style files into the environment. Variables that
// are already set win, and missing files are skipped.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	// Unset means no timeout beyond the HTTP stack's own.
	var apiTimeout time.Duration
	if v := getEnv("BANK_API_TIMEOUT", ""); v != "" {
		if apiTimeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid BANK_API_TIMEOUT: %w", err)
		}
	}

	sampleRatio, err := strconv.ParseFloat(getEnv("OTEL_SAMPLE_RATIO", "1"), 64)
	if err != nil || sampleRatio < 0 || sampleRatio > 1 {
		return nil, fmt.Errorf("invalid OTEL_SAMPLE_RATIO %q: must be a number between 0 and 1", getEnv("OTEL_SAMPLE_RATIO", "1"))
	}

	rate, err := limiter.NewRateFromFormatted(getEnv("RATE_LIMIT", "100-M"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	// Parse allowed hosts (comma-separated list)
	allowedHostsStr := getEnv("ALLOWED_HOSTS", "")
	var allowedHosts []string
	if allowedHostsStr != "" {
		for _, host := range strings.Split(allowedHostsStr, ",") {
			host = strings.TrimSpace(host)
			if host != "" {
				allowedHosts = append(allowedHosts, host)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Host:         getEnv("HOST", "0.0.0.0"),
			AllowedHosts: allowedHosts,
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("BANK_API_URL", "http://localhost:8081"), "/"),
			Timeout: apiTimeout,
		},
		UI: UIConfig{
			Locale: strings.ToLower(getEnv("UI_LOCALE", "en")),
		},
		TLS: TLSConfig{
			Enabled:      getBoolEnv("TLS_ENABLED", false),
			CertPath:     getEnv("TLS_CERT_PATH", ""),
			KeyPath:      getEnv("TLS_KEY_PATH", ""),
			RedirectHTTP: getBoolEnv("TLS_REDIRECT_HTTP", false),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getBoolEnv("OTEL_ENABLED", false),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "bankfront"),
			Environment:  getEnv("OTEL_ENVIRONMENT", "development"),
			Version:      getEnv("OTEL_SERVICE_VERSION", "dev"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
			MetricsPort:  getEnv("METRICS_PORT", "9090"),
			SampleRatio:  sampleRatio,
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "bank"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "bank"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RateLimit: RateLimitConfig{
			Rate: rate,
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	switch cfg.Store.Driver {
	case StoreMemory, StorePostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: want %s or %s", cfg.Store.Driver, StoreMemory, StorePostgres)
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("BANK_API_URL is required")
	}

	// Validate TLS configuration
	if cfg.TLS.Enabled {
		if cfg.TLS.CertPath == "" {
			return nil, fmt.Errorf("TLS_CERT_PATH is required when TLS_ENABLED=true")
		}
		if cfg.TLS.KeyPath == "" {
			return nil, fmt.Errorf("TLS_KEY_PATH is required when TLS_ENABLED=true")
		}
	}

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept: true, false, 1, 0, yes, no (case-insensitive)
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
