package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, "redis://localhost:6379", cfg.Storage.Redis.URL)
	assert.Equal(t, "data.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionDuration)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logLevel: debug
server:
  port: 9090
storage:
  type: sqlite
  sqlite:
    path: /tmp/game.db
auth:
  sessionDuration: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "/tmp/game.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, time.Hour, cfg.Auth.SessionDuration)

	// Unset values keep their defaults
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
