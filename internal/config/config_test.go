package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			HTTPPort:               "8080",
			ShutdownTimeoutSeconds: 15,
		},
		Auth: AuthConfig{
			JWTSecret:       "test-secret",
			JWTIssuer:       "forum-api",
			TokenTTLSeconds: 3600,
			BcryptCost:      10,
		},
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "forum_api", cfg.DB.Name)
	assert.Equal(t, 3600, cfg.Auth.TokenTTLSeconds)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.True(t, cfg.RateLimit.Enabled)

	// Development log defaults outside production
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.False(t, cfg.Logger.EnableSampling)
}

func TestLoadConfig_ProductionLogDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Auth.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive token ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.Auth.TokenTTLSeconds = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Auth.BcryptCost = 99
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing http port", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.HTTPPort = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		Name:     "forum_api",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=postgres dbname=forum_api port=5432 sslmode=disable",
		db.DSN(),
	)
}
