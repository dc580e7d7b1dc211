package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/clif/plugin"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clif.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "warn", cfg.Log)
}

func TestLoad_ParsesManifest(t *testing.T) {
	path := writeConfig(t, `
name: demo
description: A demo CLI
log: debug
color: false
plugins:
  history: true
  picker: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.Name)
	require.Equal(t, "A demo CLI", cfg.Description)
	require.Equal(t, "debug", cfg.Log)
	require.NotNil(t, cfg.Color)
	require.False(t, *cfg.Color)
	require.Equal(t, map[string]bool{"history": true, "picker": false}, cfg.Plugins)
}

func TestLoad_PartialManifestKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "name: demo\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.Name)
	require.Equal(t, "warn", cfg.Log)
	require.Nil(t, cfg.Color)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "name: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")
}

func TestFilterPlugins(t *testing.T) {
	history := &plugin.Plugin{ID: "history"}
	picker := &plugin.Plugin{ID: "picker"}
	extras := &plugin.Plugin{ID: "extras"}

	cfg := &Config{Plugins: map[string]bool{"picker": false, "history": true}}
	out := cfg.FilterPlugins([]*plugin.Plugin{history, picker, extras})

	require.Equal(t, []*plugin.Plugin{history, extras}, out)
}

func TestFilterPlugins_NoTogglesReturnsInput(t *testing.T) {
	plugins := []*plugin.Plugin{{ID: "a"}, {ID: "b"}}
	out := Default().FilterPlugins(plugins)
	require.Equal(t, plugins, out)
}
