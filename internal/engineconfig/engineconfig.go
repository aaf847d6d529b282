package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/museum.json"

// Prefs holds viewer preferences (window, overlays, look sensitivity, where content lives).
// Persisted across runs; the museum content itself lives in the layout file.
type Prefs struct {
	Fullscreen       bool    `json:"fullscreen"`
	ShowFPS          bool    `json:"show_fps"`
	ShowPosition     bool    `json:"show_position"`
	MouseSensitivity float32 `json:"mouse_sensitivity"`
	FOV              float32 `json:"fov"`
	AssetDir         string  `json:"asset_dir"`
	Layout           string  `json:"layout,omitempty"`
	LogLevel         string  `json:"log_level"`
}

// Default returns the preferences used when no file exists: windowed, overlays off, fov 75.
func Default() Prefs {
	return Prefs{
		Fullscreen:       false,
		ShowFPS:          false,
		ShowPosition:     false,
		MouseSensitivity: 0.002,
		FOV:              75,
		AssetDir:         "public",
		LogLevel:         "info",
	}
}

// normalize replaces unusable values with defaults so a half-written file still runs.
func (p Prefs) normalize() Prefs {
	d := Default()
	if p.MouseSensitivity <= 0 {
		p.MouseSensitivity = d.MouseSensitivity
	}
	if p.FOV <= 10 || p.FOV >= 170 {
		p.FOV = d.FOV
	}
	if p.AssetDir == "" {
		p.AssetDir = d.AssetDir
	}
	if p.LogLevel == "" {
		p.LogLevel = d.LogLevel
	}
	return p
}

// Load reads preferences from path. A missing file returns Default() and no error; a file that
// cannot be parsed returns Default() and the parse error so the caller can log it.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p.normalize(), nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
