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

	assert.Equal(t, ":8765", cfg.Bridge.Addr)
	assert.Equal(t, "/v1/host", cfg.Bridge.Path)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, "configs/tuning.yaml", cfg.TuningPath)
	assert.False(t, cfg.Discord.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("BRIDGE_ADDR", "127.0.0.1:9000")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Store.RedisURL)
	assert.Equal(t, "127.0.0.1:9000", cfg.Bridge.Addr)
	assert.True(t, cfg.Discord.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("redis without url", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "redis")
		_, err := Load()
		assert.ErrorContains(t, err, "REDIS_URL")
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "yaml")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown STORE_BACKEND")
	})

	t.Run("discord token without app", func(t *testing.T) {
		t.Setenv("DISCORD_TOKEN", "token")
		_, err := Load()
		assert.ErrorContains(t, err, "DISCORD_APP_ID")
	})
}

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		tuning, err := LoadTuning(filepath.Join(dir, "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultTuning(), tuning)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "tuning.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fine_cadence_ticks: 5\ncoarse_cadence_ticks: 40\n"), 0o644))

		tuning, err := LoadTuning(path)
		require.NoError(t, err)
		assert.Equal(t, 5, tuning.FineCadenceTicks)
		assert.Equal(t, 40, tuning.CoarseCadenceTicks)
		assert.Equal(t, 80, tuning.IgniteTicks)
	})

	t.Run("zero cadence rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fine_cadence_ticks: 0\n"), 0o644))

		_, err := LoadTuning(path)
		assert.ErrorContains(t, err, "fine_cadence_ticks")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fine_cadence_ticks: [\n"), 0o644))

		_, err := LoadTuning(path)
		assert.ErrorContains(t, err, "tuning.yaml")
	})
}
