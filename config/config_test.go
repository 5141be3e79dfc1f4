package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 0.1, cfg.Patterns.DojiMaxBodyRatio)
	assert.Equal(t, 3, cfg.Patterns.TrendLookback)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
patterns:
  doji_max_body_ratio: 0.05
  trend_lookback: 5
journal:
  enabled: true
  db_path: ./runs.sqlite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Patterns.DojiMaxBodyRatio)
	assert.Equal(t, 5, cfg.Patterns.TrendLookback)
	// Unset options keep defaults.
	assert.Equal(t, 2.0, cfg.Patterns.ShadowBodyRatio)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "patterns:\n  doji_max_body_ratio: 2.5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Patterns.ShadowBodyRatio = 3.0

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, loaded.Patterns.ShadowBodyRatio)
}
