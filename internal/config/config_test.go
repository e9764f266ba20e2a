package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FOOS_ADDR", ":9999")
	t.Setenv("FOOS_REDIS_ADDR", "redis:6379")
	t.Setenv("FOOS_REDIS_DB", "3")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: debug\n"), 0o600))

	t.Setenv("FOOS_CONFIG", path)
	t.Setenv("FOOS_ADDR", ":6060")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr, "env wins over file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("FOOS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()

	require.Error(t, err)
}
