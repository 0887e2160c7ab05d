package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-api/internal/config"
)

// setRequiredEnv sets the minimum environment for a valid configuration.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKNEST_DATABASE_URL", "postgres://localhost:5432/tasknest_test")
	t.Setenv("TASKNEST_AUTH_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKNEST_SERVER_PORT", "9090")
	t.Setenv("TASKNEST_SERVER_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/tasknest_test", cfg.Database.URL)
	assert.Len(t, cfg.Auth.TokenSecret, 32)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, int64(1<<20), cfg.Upload.MaxAvatarBytes)
	assert.Equal(t, 250, cfg.Upload.AvatarSize)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing database url",
			env: map[string]string{
				"TASKNEST_AUTH_TOKEN_SECRET": "0123456789abcdef0123456789abcdef",
			},
		},
		{
			name: "token secret too short",
			env: map[string]string{
				"TASKNEST_DATABASE_URL":      "postgres://localhost:5432/tasknest_test",
				"TASKNEST_AUTH_TOKEN_SECRET": "tooshort",
			},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"TASKNEST_DATABASE_URL":      "postgres://localhost:5432/tasknest_test",
				"TASKNEST_AUTH_TOKEN_SECRET": "0123456789abcdef0123456789abcdef",
				"TASKNEST_SERVER_LOG_LEVEL":  "loud",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
