package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Exts are the font file extensions raylib can load.
var Exts = []string{".ttf", ".otf"}

// BaseDirs lists where fonts are looked for: <assetDir>/fonts, then assets/fonts next to the
// working directory and two levels up (running from cmd/museum).
func BaseDirs(assetDir string) []string {
	var dirs []string
	if assetDir != "" {
		dirs = append(dirs, filepath.Join(assetDir, "fonts"))
	}
	return append(dirs, "assets/fonts", "../../assets/fonts")
}

// ScanDir returns the font files under dir as slash-separated relative paths. A missing dir
// is empty, not an error.
func ScanDir(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

// squash folds case and drops separators so "Dancing Script" matches "Dancing_Script/DancingScript-Bold.ttf".
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// Find returns the first font file in dirs whose path contains family, preferring a regular
// weight. It wraps os.ErrNotExist when nothing matches.
func Find(dirs []string, family string) (string, error) {
	want := squash(family)
	if want == "" {
		return "", fmt.Errorf("font family is empty: %w", os.ErrNotExist)
	}
	var found []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(squash(rel), want) {
				found = append(found, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(found) == 0 {
		return "", fmt.Errorf("font %q: %w", family, os.ErrNotExist)
	}
	if i := slices.IndexFunc(found, func(p string) bool {
		return strings.Contains(strings.ToLower(filepath.Base(p)), "regular")
	}); i >= 0 {
		return found[i], nil
	}
	return found[0], nil
}
