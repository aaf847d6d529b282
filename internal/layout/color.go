package layout

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var namedColors = map[string]rl.Color{
	"white":  rl.NewColor(255, 255, 255, 255),
	"black":  rl.NewColor(0, 0, 0, 255),
	"red":    rl.NewColor(255, 0, 0, 255),
	"green":  rl.NewColor(0, 128, 0, 255),
	"blue":   rl.NewColor(0, 0, 255, 255),
	"yellow": rl.NewColor(255, 255, 0, 255),
	"orange": rl.NewColor(255, 165, 0, 255),
	"pink":   rl.NewColor(255, 192, 203, 255),
	"gold":   rl.NewColor(255, 215, 0, 255),
	"beige":  rl.NewColor(245, 245, 220, 255),
	"brown":  rl.NewColor(165, 42, 42, 255),
	"gray":   rl.NewColor(128, 128, 128, 255),
	"grey":   rl.NewColor(128, 128, 128, 255),
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA or a basic colour name.
func ParseColor(s string) (rl.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return rl.Color{}, fmt.Errorf("unknown colour %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// color parses s, falling back when it is empty or invalid. Validate reports the invalid ones.
func color(s string, fallback rl.Color) rl.Color {
	if s == "" {
		return fallback
	}
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// withOpacity scales alpha by o (0..1). Zero or negative means opaque.
func withOpacity(c rl.Color, o float32) rl.Color {
	if o <= 0 || o >= 1 {
		return c
	}
	c.A = uint8(float32(c.A) * o)
	return c
}
