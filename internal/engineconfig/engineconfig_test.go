package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "museum.json")
	want := Default()
	want.Fullscreen = true
	want.ShowFPS = true
	want.Layout = "assets/museum.yaml"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "museum.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true, "fov": 500, "mouse_sensitivity": -1}`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, float32(75), p.FOV)
	assert.Equal(t, float32(0.002), p.MouseSensitivity)
	assert.Equal(t, "public", p.AssetDir)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "museum.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}
