package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.False(t, cfg.ReaperEnabled)
	assert.Equal(t, 30*24*time.Hour, cfg.ReaperMaxAge)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REFRESH_TOKEN_TTL", "1h")
	t.Setenv("INVITE_REAPER_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Hour, cfg.RefreshTokenTTL)
	assert.True(t, cfg.ReaperEnabled)
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "openai")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestGetEnvDuration_BadValueFallsBack(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
}
