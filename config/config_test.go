package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.ShowProgress)
	assert.Equal(t, uint32(80), cfg.NumChunks)
	assert.Zero(t, cfg.CoplanarEpsilon)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoad(t *testing.T) {
	t.Run("OverlaysOverDefaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "halfspace.yaml")
		require.NoError(t, os.WriteFile(path, []byte("show_progress: true\nworkers: 4\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.True(t, cfg.ShowProgress)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, uint32(80), cfg.NumChunks, "absent field keeps the default")
	})

	t.Run("ZeroNumChunksFallsBackToDefault", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "halfspace.yaml")
		require.NoError(t, os.WriteFile(path, []byte("num_chunks: 0\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, uint32(80), cfg.NumChunks)
	})

	t.Run("MissingFileErrors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("InvalidYAMLErrors", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "halfspace.yaml")
		require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
