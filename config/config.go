package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from ENV
func GetEnvironment() Environment {
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; rate limiting is skipped when empty)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Payment gateway configuration
	PaymentGatewayURL string
	PaymentSecretKey  string

	// SendGrid configuration (optional)
	SendGridAPIKey string
	AdminEmail     string
}

// LoadConfig builds a Config from environment variables, falling back
// to Docker secret files for sensitive values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnvDefault("SERVER_PORT", "8000"),
		ServerHost:        getEnvDefault("SERVER_HOST", "0.0.0.0"),
		DBHost:            getEnvDefault("DB_HOST", "localhost"),
		DBPort:            getEnvDefault("DB_PORT", "5432"),
		DBUser:            envOrSecret("DB_USER", "db_user"),
		DBPassword:        envOrSecret("DB_PASSWORD", "db_password"),
		DBName:            getEnvDefault("DB_NAME", "nikahlink"),
		DBSSLMode:         getEnvDefault("DB_SSL_MODE", "disable"),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getEnvDefault("REDIS_PORT", "6379"),
		RedisPassword:     envOrSecret("REDIS_PASSWORD", "redis_password"),
		RedisDB:           0,
		JWTSecret:         envOrSecret("JWT_SECRET", "jwt_secret"),
		PaymentGatewayURL: getEnvDefault("PAYMENT_GATEWAY_URL", "https://api.stripe.com/v1/payment_intents"),
		PaymentSecretKey:  envOrSecret("PAYMENT_SECRET_KEY", "payment_secret_key"),
		SendGridAPIKey:    envOrSecret("SENDGRID_API_KEY", "sendgrid_api_key"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		return fmt.Errorf("database configuration is incomplete")
	}
	if GetEnvironment() == Production && cfg.PaymentSecretKey == "" {
		return fmt.Errorf("PAYMENT_SECRET_KEY is required in production")
	}
	return nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrSecret prefers the environment variable and falls back to a
// Docker secret file under SECRETS_DIR (default /run/secrets).
func envOrSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
