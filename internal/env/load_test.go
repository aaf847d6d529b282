package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"love-museum/internal/engineconfig"
)

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# museum\nMUSEUM_ASSET_DIR=\"gallery\"\nMUSEUM_SHOW_FPS=true\n"), 0644))
	t.Setenv(AssetDirVar, "")
	os.Unsetenv(AssetDirVar)
	t.Setenv(ShowFPSVar, "")
	os.Unsetenv(ShowFPSVar)

	require.NoError(t, Load(path))
	p := Apply(engineconfig.Default())
	assert.Equal(t, "gallery", p.AssetDir)
	assert.True(t, p.ShowFPS)
}

func TestApplyOverrides(t *testing.T) {
	vars := map[string]string{
		AssetDirVar:   " /srv/museum ",
		FullscreenVar: "1",
		ShowFPSVar:    "maybe",
		LogLevelVar:   "DEBUG",
	}
	lookup := func(k string) (string, bool) { v, ok := vars[k]; return v, ok }

	p := apply(engineconfig.Default(), lookup)
	assert.Equal(t, "/srv/museum", p.AssetDir)
	assert.True(t, p.Fullscreen)
	assert.False(t, p.ShowFPS)
	assert.Equal(t, "debug", p.LogLevel)
}

func TestApplyNothingSet(t *testing.T) {
	none := func(string) (string, bool) { return "", false }
	assert.Equal(t, engineconfig.Default(), apply(engineconfig.Default(), none))
}
