package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret       string
	ExpirationMs int64
}

// MinJWTSecretBytes is the minimum HS256 signing key length
const MinJWTSecretBytes = 32

// DefaultTokenExpirationMs is the default token lifetime (24h)
const DefaultTokenExpirationMs = 86400000

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	jwtCfg, err := loadJWTConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "8080"),
		Database: loadDatabaseConfig(),
		JWT:      jwtCfg,
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config
func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "loandesk"),
	}
}

// loadJWTConfig loads JWT config. A short signing secret is a startup
// failure, not a warning: HS256 needs at least a 256-bit key.
func loadJWTConfig() (JWTConfig, error) {
	secret := getEnv("JWT_SECRET", "")
	if len(secret) < MinJWTSecretBytes {
		return JWTConfig{}, fmt.Errorf("JWT_SECRET must be at least %d bytes for HS256", MinJWTSecretBytes)
	}

	expirationMs, err := strconv.ParseInt(getEnv("JWT_EXPIRATION_MS", strconv.Itoa(DefaultTokenExpirationMs)), 10, 64)
	if err != nil || expirationMs <= 0 {
		return JWTConfig{}, fmt.Errorf("invalid JWT_EXPIRATION_MS: must be a positive integer")
	}

	return JWTConfig{
		Secret:       secret,
		ExpirationMs: expirationMs,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return origins
}
