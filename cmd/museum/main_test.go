package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"love-museum/internal/engineconfig"
	"love-museum/internal/env"
	"love-museum/internal/layout"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "museum.yaml")
	out, err := execute(t, "export-layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	l, err := layout.Load(path)
	require.NoError(t, err)
	assert.Equal(t, layout.Default(), l)
}

func TestExportLayoutNeedsPath(t *testing.T) {
	_, err := execute(t, "export-layout")
	assert.Error(t, err)
}

func TestInitConfigAppliesEnvironment(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config", "museum.json")
	t.Setenv(env.AssetDirVar, "gallery")
	t.Setenv(env.ShowFPSVar, "true")

	_, err := execute(t, "init-config", "--config", cfg, "--env", filepath.Join(dir, ".env"))
	require.NoError(t, err)

	prefs, err := engineconfig.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, "gallery", prefs.AssetDir)
	assert.True(t, prefs.ShowFPS)
}

func TestLoadPrefsReportsBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "museum.json")
	require.NoError(t, os.WriteFile(cfg, []byte("{"), 0644))

	prefs, warnings := loadPrefs(&flags{configPath: cfg, envPath: filepath.Join(dir, ".env")})
	assert.Len(t, warnings, 1)
	assert.Equal(t, float32(75), prefs.FOV)
}
