package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: everything else falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, Board{Height: 6, Width: 7}, conf.Board)
		assert.Equal(t, 24*time.Hour, conf.Match.TTL)
	})

	t.Run("Reads every section", func(t *testing.T) {
		path := writeConfig(t, `
log-level: info
http-port: "8080"
redis:
  host: redis
  port: "6380"
board:
  height: 8
  width: 9
match:
  ttl: 30m
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, Board{Height: 8, Width: 9}, conf.Board)
		assert.Equal(t, 30*time.Minute, conf.Match.TTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "board:\n  width: 9\n")
		t.Setenv("BOARD_WIDTH", "5")
		t.Setenv("REDIS_HOST", "cache")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 5, conf.Board.Width)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
