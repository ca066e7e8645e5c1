package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, "data/dictionary.bin", c.DictionaryPath)
	assert.Equal(t, 1000, c.Generator.MaxAttempts)
	assert.Equal(t, 130, c.Generator.MinTotalPoints)
	assert.Equal(t, 8, c.Generator.MinWordLength)
	assert.Equal(t, 16, c.Generator.MaxWordLength)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quartiles.yaml")
	body := `
dictionary_path: /srv/words/dictionary.bin
generator:
  min_total_points: 150
  max_attempts: 250
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/words/dictionary.bin", c.DictionaryPath)
	assert.Equal(t, 150, c.Generator.MinTotalPoints)
	assert.Equal(t, 250, c.Generator.MaxAttempts)
	// untouched keys keep their defaults
	assert.Equal(t, 8, c.Generator.MinWordLength)

	g := c.GeneratorConfig()
	assert.Equal(t, 150, g.MinTotalPoints)
	assert.Equal(t, 250, g.MaxAttempts)
}

func TestLoadBadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: ["), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
