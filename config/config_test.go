package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "recipes")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "recipebook")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRE", "2h")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "recipes", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Contains(t, cfg.PostgresDSN(), "host=db port=5433")
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
	for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_PORT", "SERVER_PORT", "JWT_EXPIRE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigPrefersSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.JWTSecret)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{Env: Test, DBDriver: "sqlite", SQLitePath: "x.db", JWTSecret: "s", JWTExpiry: time.Hour}
	}

	assert.NoError(t, ValidateConfig(base()))

	missingSecret := base()
	missingSecret.JWTSecret = ""
	assert.ErrorContains(t, ValidateConfig(missingSecret), "JWT_SECRET")

	badDriver := base()
	badDriver.DBDriver = "mongo"
	assert.ErrorContains(t, ValidateConfig(badDriver), "DB_DRIVER")

	prod := base()
	prod.Env = Production
	assert.ErrorContains(t, ValidateConfig(prod), "at least 32 bytes")
}
