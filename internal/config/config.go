package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Addr    string
	GinMode string
	TZ      string

	// DBDriver selects the storage engine: "sqlite" (default, file-based
	// like the original deployment) or "postgres".
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration
}

func Load() *Config {
	cfg := &Config{
		Addr:       getenv("ADDR", ":8080"),
		GinMode:    getenv("GIN_MODE", "debug"),
		TZ:         getenv("TZ", "UTC"),
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		SQLitePath: getenv("SQLITE_PATH", "data/catalog.db"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPass:     getenv("DB_PASS", ""),
		DBName:     getenv("DB_NAME", "catalog"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		JWTSecret:  getenv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:   getenvDuration("TOKEN_TTL", 30*time.Minute),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
