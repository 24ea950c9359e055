package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, defaultHeader, c.Header)
	assert.Positive(t, c.Workers)
	assert.True(t, c.HasFeature(FeatureFacade.Name))
	assert.True(t, c.HasFeature(FeatureAPI.Name))
	assert.False(t, c.HasFeature(FeatureErrorArtifact.Name))
	assert.NotNil(t, c.logger())
}

func TestNewConfig(t *testing.T) {
	t.Run("applies options", func(t *testing.T) {
		c, err := NewConfig(WithTarget("out"), WithWorkers(2))
		require.NoError(t, err)
		assert.Equal(t, "out", c.Target)
		assert.Equal(t, 2, c.Workers)
	})

	t.Run("returns the first option error", func(t *testing.T) {
		c, err := NewConfig(WithWorkers(0), WithTarget(""))
		require.Error(t, err)
		assert.Nil(t, c)
		var ce *ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Workers", ce.Option)
	})
}

func TestConfigFeatureEnabled(t *testing.T) {
	t.Run("returns true for enabled feature", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureFacade}}

		enabled, err := c.FeatureEnabled("facade")

		assert.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("returns false for known disabled feature", func(t *testing.T) {
		c := &Config{}

		enabled, err := c.FeatureEnabled("errors/artifact")

		assert.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("returns error for unknown feature", func(t *testing.T) {
		c := &Config{}

		enabled, err := c.FeatureEnabled("privacy")

		assert.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.False(t, enabled)
		assert.False(t, c.HasFeature("privacy"))
	})
}

func TestConfigPackageName(t *testing.T) {
	assert.Equal(t, "sbml", Config{Package: "example.com/models/sbml"}.PackageName("core"))
	assert.Equal(t, "core", Config{}.PackageName("core"))
}

func TestFeatureCleanup(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"species_facade.go", "species_api.go", "species.go", ErrorArtifactYAML, ErrorArtifactMsgpack} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	c := &Config{Target: dir, Features: []Feature{FeatureAPI}}
	require.NoError(t, cleanupFeatures(c))

	assert.NoFileExists(t, filepath.Join(dir, "species_facade.go"))
	assert.FileExists(t, filepath.Join(dir, "species_api.go"))
	assert.FileExists(t, filepath.Join(dir, "species.go"))
	assert.NoFileExists(t, filepath.Join(dir, ErrorArtifactYAML))
	assert.NoFileExists(t, filepath.Join(dir, ErrorArtifactMsgpack))

	// Removing missing files is not an error.
	require.NoError(t, cleanupFeatures(c))
}

func TestHooks(t *testing.T) {
	var calls []string
	hook := func(name string) Hook {
		return func(next Generator) Generator {
			return GenerateFunc(func(g *Graph) error {
				calls = append(calls, name)
				return next.Generate(g)
			})
		}
	}
	var gen Generator = GenerateFunc(func(*Graph) error {
		calls = append(calls, "base")
		return nil
	})
	hooks := []Hook{hook("first"), hook("second")}
	for i := len(hooks) - 1; i >= 0; i-- {
		gen = hooks[i](gen)
	}

	require.NoError(t, gen.Generate(&Graph{}))
	assert.Equal(t, []string{"first", "second", "base"}, calls)
}
