package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creastat/storefront/api"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, api.DefaultBaseURL, cfg.BaseURL)
}

func TestLoad_OverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
base_url: http://localhost:3000/api/v1
timeout: 5s
session:
  driver: redis
  redis:
    addr: localhost:6379
    db: 2
    ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "redis", cfg.Session.Driver)
	assert.Equal(t, "localhost:6379", cfg.Session.Redis.Addr)
	assert.Equal(t, 2, cfg.Session.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Session.Redis.TTL)

	// Fields the file leaves out keep their defaults.
	assert.Equal(t, Default().ReturnURL, cfg.ReturnURL)
}

func TestLoad_EmptyValuesBackfilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
base_url: ""
timeout: 0s
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "file", cfg.Session.Driver)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [oops"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
