package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"love-museum/internal/engineconfig"
)

// Environment variables that override preferences.
const (
	AssetDirVar   = "MUSEUM_ASSET_DIR"
	FullscreenVar = "MUSEUM_FULLSCREEN"
	ShowFPSVar    = "MUSEUM_SHOW_FPS"
	LogLevelVar   = "MUSEUM_LOG_LEVEL"
)

// Load reads the given file (e.g. ".env") into the process environment. Variables already set
// are kept. The file may be missing; that is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Apply overlays MUSEUM_* variables onto p. Booleans that fail to parse are ignored.
func Apply(p engineconfig.Prefs) engineconfig.Prefs {
	return apply(p, os.LookupEnv)
}

func apply(p engineconfig.Prefs, lookup func(string) (string, bool)) engineconfig.Prefs {
	if v, ok := lookup(AssetDirVar); ok && strings.TrimSpace(v) != "" {
		p.AssetDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(LogLevelVar); ok && strings.TrimSpace(v) != "" {
		p.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if b, ok := boolVar(lookup, FullscreenVar); ok {
		p.Fullscreen = b
	}
	if b, ok := boolVar(lookup, ShowFPSVar); ok {
		p.ShowFPS = b
	}
	return p
}

func boolVar(lookup func(string) (string, bool), name string) (bool, bool) {
	v, ok := lookup(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}
