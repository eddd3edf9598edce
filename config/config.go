package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Host string
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMigrate  bool

	JWTSecret string
	TokenTTL  time.Duration
}

func Load() *Config {
	migrate, _ := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))

	return &Config{
		Host:       getEnv("HOST", "127.0.0.1"),
		Port:       getEnv("PORT", "3000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "osamendibet"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBMigrate:  migrate,
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:   72 * time.Hour,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
