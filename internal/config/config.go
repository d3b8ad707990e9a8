package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultDSN         = "host=localhost user=postgres password=postgres dbname=store_admin port=5432 sslmode=disable"
	defaultCORSOrigins = "http://localhost:3000"
)

type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=store_admin port=5432 sslmode=disable"`
	JWTSecret   string `env:"JWT_SECRET"`
	CORSOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`

	// Built-in identity provider (register/login). Disable when tokens come
	// from an external provider sharing JWT_SECRET.
	LocalAuthEnabled bool `env:"LOCAL_AUTH_ENABLED" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	StorageURL        string `env:"STORAGE_URL"`
	StorageBucket     string `env:"STORAGE_BUCKET" envDefault:"images"`
	StorageServiceKey string `env:"STORAGE_SERVICE_KEY"`

	// local | utc | store
	RevenueTimezonePolicy string `env:"REVENUE_TIMEZONE_POLICY" envDefault:"local"`
	CurrencyCode          string `env:"CURRENCY_CODE" envDefault:"USD"`
	CurrencyLocale        string `env:"CURRENCY_LOCALE" envDefault:"en-US"`
}

// Parse reads the environment (and a .env file when present) without
// enforcing production checks.
func Parse() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	cfg.RevenueTimezonePolicy = strings.ToLower(strings.TrimSpace(cfg.RevenueTimezonePolicy))
	cfg.CurrencyCode = strings.ToUpper(strings.TrimSpace(cfg.CurrencyCode))
	cfg.StorageURL = strings.TrimRight(cfg.StorageURL, "/")

	switch cfg.RevenueTimezonePolicy {
	case "local", "utc", "store":
	default:
		return nil, fmt.Errorf("invalid REVENUE_TIMEZONE_POLICY %q (local, utc, store)", cfg.RevenueTimezonePolicy)
	}

	return cfg, nil
}

func Load() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}
	if cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN is the default value, set your own Postgres connection for production")
	}
	if cfg.CORSOrigins == defaultCORSOrigins {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is the default value, set your own domain for production")
	}
	if cfg.StorageURL == "" {
		log.Println("[WARN] STORAGE_URL is not set, image uploads and deletes will fail")
	}

	return cfg
}
