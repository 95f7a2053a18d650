package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/fourinarow/internal/connectfour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every section set
		path := writeConfig(t, `
log-level: debug
http-port: "8081"
board:
  columns: 9
  rows: 7
  win-length: 5
redis:
  enabled: true
  host: redis
  port: "6380"
  channel: matches
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, connectfour.Settings{Columns: 9, Rows: 7, WinLength: 5}, conf.Board.Settings())
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "matches", conf.Redis.Channel)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: warn\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the classic 7x6 four-in-a-row board is used
		require.NoError(t, err)
		assert.Equal(t, connectfour.DefaultSettings(), conf.Board.Settings())
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "fourinarow:events", conf.Redis.Channel)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
