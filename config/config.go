package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTExpiry time.Duration

	// Rate limits for creation endpoints
	CreateRateLimit  int
	CreateRateWindow time.Duration

	CORSOrigins []string

	// Image storage
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string

	LogLevel string
}

// LoadConfig builds a Config from the environment, a .env file in development
// and Docker secrets for sensitive values.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	if env == Development {
		// A missing .env file is fine, the environment may already be populated.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Env:              env,
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		ServerHost:       getEnv("SERVER_HOST", "0.0.0.0"),
		DBDriver:         getEnv("DB_DRIVER", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       secretOrEnv("db_password", "DB_PASSWORD"),
		DBName:           getEnv("DB_NAME", "recipebook"),
		DBSSLMode:        getEnv("DB_SSL_MODE", "disable"),
		SQLitePath:       getEnv("SQLITE_PATH", "recipebook.db"),
		RedisHost:        os.Getenv("REDIS_HOST"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    secretOrEnv("redis_password", "REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisURL:         os.Getenv("REDIS_URL"),
		JWTSecret:        secretOrEnv("jwt_secret", "JWT_SECRET"),
		JWTExpiry:        getEnvDuration("JWT_EXPIRE", 7*24*time.Hour),
		CreateRateLimit:  getEnvInt("CREATE_RATE_LIMIT", 20),
		CreateRateWindow: getEnvDuration("CREATE_RATE_WINDOW", 15*time.Minute),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:8081,http://localhost:19006")),
		S3Bucket:         os.Getenv("S3_BUCKET_NAME"),
		S3Region:         os.Getenv("AWS_REGION"),
		S3PublicBaseURL:  os.Getenv("S3_PUBLIC_BASE_URL"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// PostgresDSN returns the lib/pq connection string for the configured database
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// secretOrEnv prefers the Docker secret and falls back to the environment
func secretOrEnv(secret, envKey string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return os.Getenv(envKey)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
