package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwjstewart/gfsbuddy/api/v1beta1"
	"github.com/rwjstewart/gfsbuddy/pkg/config"
	"github.com/rwjstewart/gfsbuddy/pkg/input"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := config.New()

	assert.NotNil(t, cfg)
	assert.Equal(t, "gfsbuddy.rwjstewart.com/v1beta1", cfg.APIVersion)
	assert.Equal(t, "Configuration", cfg.Kind)
	assert.NotNil(t, cfg.Engine)
	assert.NotNil(t, cfg.Input)
	assert.Equal(t, input.DefaultFormat, cfg.Input.Format)
}

func TestConfig_EnsureDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		TypeMeta: v1beta1.TypeMeta{
			APIVersion: "gfsbuddy.rwjstewart.com/v1beta1",
			Kind:       "Configuration",
		},
	}

	assert.Nil(t, cfg.Engine)
	assert.Nil(t, cfg.Input)

	cfg.EnsureDefaults()

	assert.NotNil(t, cfg.Engine)
	assert.NotNil(t, cfg.Input)
	assert.Equal(t, input.DefaultFormat, cfg.Input.Format)
}

func TestConfig_MarshalYAML(t *testing.T) {
	t.Parallel()

	cfg := config.New()

	b, err := cfg.MarshalYAML()
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, "apiVersion: gfsbuddy.rwjstewart.com/v1beta1")
	assert.Contains(t, out, "kind: Configuration")

	// The marshalled config round-trips through the loader.
	loader := config.NewLoaderFromBytes(b)
	require.NoError(t, loader.Validate())

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Kind, got.Kind)
}

func TestConfig_Write(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.New()

	require.NoError(t, cfg.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Configuration")

	// A second write must not clobber the existing file.
	require.NoError(t, os.WriteFile(path, []byte("kind: Configuration\n"), 0o600))
	require.NoError(t, cfg.Write(path))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kind: Configuration\n", string(data))
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, config.WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: gfsbuddy.rwjstewart.com/v1beta1")

	// The embedded default must validate against the schema.
	loader := config.NewLoaderFromBytes(data)
	require.NoError(t, loader.Validate())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "Configuration", cfg.Kind)
}

func TestWriteDefault_Force(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("kind: Old\n"), 0o600))
	require.NoError(t, config.WriteDefault(path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Configuration")

	// The old file is kept as a backup.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
