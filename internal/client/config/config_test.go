package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "veriscan.db", c.StorePath)
	assert.Equal(t, 1000, c.SnapshotLimit)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.ServerBaseURL)
	assert.Equal(t, 1000, cfg.SnapshotLimit)
}

func TestEnvOverlay(t *testing.T) {
	t.Setenv("VERISCAN_SERVER_URL", "http://verify.example.org")
	t.Setenv("VERISCAN_SNAPSHOT_LIMIT", "250")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://verify.example.org", c.ServerBaseURL)
	assert.Equal(t, 250, c.SnapshotLimit)
	assert.Equal(t, 30*time.Second, c.RequestTimeout, "unset variables keep defaults")
}
