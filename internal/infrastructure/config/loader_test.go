package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadJSON(t *testing.T) {
	loader := NewLoader("../../../cmd/doodle/configs")

	cfg, err := loader.Load("game")
	require.NoError(t, err)

	assert.Equal(t, "classic", cfg.Name)
	assert.Equal(t, 400.0, cfg.World.Width)
	assert.Equal(t, 600.0, cfg.World.Height)
	assert.Equal(t, 60.0, cfg.Doodler.Size)
	assert.Equal(t, 0.2, cfg.Doodler.Gravity)
	assert.Equal(t, -10.0, cfg.Doodler.BounceImpulse)
	assert.Equal(t, 10, cfg.Platform.Count)
	assert.Equal(t, 120, cfg.Display.TPS)
	assert.Nil(t, cfg.Seed, "shipped config leaves the seed open")
}

func TestLoader_LoadTOML(t *testing.T) {
	loader := NewLoader("../../../cmd/doodle/configs")

	cfg, err := loader.Load("wide")
	require.NoError(t, err)

	assert.Equal(t, "wide", cfg.Name)
	assert.Equal(t, 640.0, cfg.World.Width)
	assert.Equal(t, 18, cfg.Platform.Count)
	assert.Equal(t, 8.0, cfg.Collision.Tolerance)

	seed, ok := cfg.SeedValue()
	require.True(t, ok)
	assert.Equal(t, uint64(20240601), seed)

	// Sections missing from the file keep their defaults
	assert.Equal(t, Default().Doodler, cfg.Doodler)
	assert.Equal(t, Default().Display, cfg.Display)
}

func TestLoader_PrefersJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"name": "from-json"}`)},
		"game.toml": {Data: []byte(`name = "from-toml"`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").Load("game")
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Name)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json":  {Data: []byte(`{"world": `)},
		"invalid.json": {Data: []byte(`{"world": {"width": -5}}`)},
		"endless.toml": {Data: []byte("[world]\nwidth = inf\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	t.Run("missing", func(t *testing.T) {
		_, err := loader.Load("nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := loader.Load("broken")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse broken.json")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := loader.Load("invalid")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "world.width must be positive")
	})

	t.Run("infinite toml value", func(t *testing.T) {
		_, err := loader.Load("endless")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "world.width must be finite")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[doodler]\nspeed = 15.0\n"), 0o644))

	cfg, err := LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.Doodler.Speed)
	assert.Equal(t, Default().World, cfg.World)

	yamlPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("a: b"), 0o644))
	_, err = LoadFile(yamlPath)
	assert.Error(t, err, "unknown extensions are rejected")

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
