package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	Catalog CatalogConfig
	Auth    AuthConfig
	Storage StorageConfig

	CORSAllowedOrigins []string
}

type CatalogConfig struct {
	Backend     string
	DatabaseURL string
}

type AuthConfig struct {
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
}

// StorageConfig points at the S3-compatible bucket holding the menu seed.
// Seeding is disabled when Bucket or SeedKey is empty.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	SeedKey   string
}

func (s StorageConfig) Enabled() bool {
	return s.Bucket != "" && s.SeedKey != ""
}

// Load reads .env (outside production) and then the process environment.
func Load() (*Config, error) {
	appEnv := getEnv("APP_ENV", "development")
	if appEnv != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   appEnv,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Catalog: CatalogConfig{
			Backend:     strings.ToLower(getEnv("CATALOG_BACKEND", BackendMemory)),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:         os.Getenv("JWT_SECRET"),
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		Storage: StorageConfig{
			Endpoint:  os.Getenv("R2_ENDPOINT"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
			Bucket:    os.Getenv("MENU_SEED_BUCKET"),
			SeedKey:   os.Getenv("MENU_SEED_KEY"),
		},
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing or inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Catalog.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Catalog.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when CATALOG_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_BACKEND %q", c.Catalog.Backend))
	}

	if c.AppEnv == "production" && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}

	if c.Storage.Enabled() && c.Storage.Endpoint == "" {
		errs = append(errs, errors.New("R2_ENDPOINT is required when MENU_SEED_BUCKET is set"))
	}

	return errors.Join(errs...)
}

// AdminEnabled is false until both a signing secret and a password hash exist.
func (c *Config) AdminEnabled() bool {
	return c.Auth.JWTSecret != "" && c.Auth.AdminPasswordHash != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
