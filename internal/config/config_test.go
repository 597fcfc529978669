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
	assert.Contains(t, cfg.BaseURL, "/api/api/v1")
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("BOOKCAL_BASE_URL", "http://localhost:60001/api/api/v1")
	t.Setenv("BOOKCAL_TIMEOUT", "5s")
	t.Setenv("BOOKCAL_DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:60001/api/api/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoadMockConfig_Defaults(t *testing.T) {
	cfg, err := LoadMockConfig()
	require.NoError(t, err)
	assert.Equal(t, "60001", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
}
