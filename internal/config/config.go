package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTokenTTL is how long issued bearer tokens stay valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// DefaultJWTSecret signs tokens outside production when JWT_SECRET is unset.
const DefaultJWTSecret = "change-me-secret"

// ErrInsecureJWTSecret is returned when production would sign tokens with
// the well-known default secret.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value in production")

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Admin export gate. Empty disables the backup endpoints.
	AdminToken string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		JWTSecret:  getEnv("JWT_SECRET", DefaultJWTSecret),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", DefaultTokenTTL.String())
	expDur, err := time.ParseDuration(expStr)
	if err != nil || expDur <= 0 {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to %s\n", expStr, DefaultTokenTTL)
		expDur = DefaultTokenTTL
	}
	config.JWTExpirationDur = expDur

	if config.JWTSecret == DefaultJWTSecret {
		if config.Env == "production" {
			return nil, ErrInsecureJWTSecret
		}
		log.Println("Warning: JWT_SECRET is not set, using the development default")
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
