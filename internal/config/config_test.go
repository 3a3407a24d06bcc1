package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPPort)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	require.Equal(t, 10*time.Minute, cfg.ReportTTL)
	require.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REPORT_TTL", "30m")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.HTTPPort)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 30*time.Minute, cfg.ReportTTL)
}
