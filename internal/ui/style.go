package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"love-museum/internal/layout"
)

// Rule is one selector and its raw property values.
type Rule struct {
	Selector string            // ".banner" or "#hint"
	Props    map[string]string // "background" -> "#00000099"
}

// Stylesheet is an ordered list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle is a node's resolved style. A *Pct field of -1 means the pixel field is used;
// otherwise it is a percentage of the screen. Left/top percentages place the node's centre.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	WidthPct   int32
	HeightPct  int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	Center     bool
}

// DefaultComputedStyle is transparent, white text, zero size.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.Blank,
		Color:      rl.White,
		Border:     rl.Black,
		WidthPct:   -1,
		HeightPct:  -1,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   defaultFontSize,
	}
}

// ParsePx parses "12" or "12px".
func ParsePx(s string) (int32, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px")))
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in [0, 100].
func ParsePct(s string) (int32, bool) {
	num, ok := strings.CutSuffix(strings.TrimSpace(s), "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// length stores v into px or pct depending on its unit. Bad values leave both untouched.
func length(v string, px, pct *int32) {
	if p, ok := ParsePct(v); ok {
		*pct = p
	} else if n, ok := ParsePx(v); ok {
		*px = n
	}
}

// ResolveProps builds a style from merged properties. Colours accept anything layout.ParseColor
// does (hex with optional alpha, or a colour name); unparseable values are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, err := layout.ParseColor(v); err == nil {
				out.Background = c
			}
		case "color":
			if c, err := layout.ParseColor(v); err == nil {
				out.Color = c
			}
		case "border":
			if c, err := layout.ParseColor(v); err == nil {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			length(v, &out.Width, &out.WidthPct)
		case "height":
			length(v, &out.Height, &out.HeightPct)
		case "left":
			length(v, &out.Left, &out.LeftPct)
		case "top":
			length(v, &out.Top, &out.TopPct)
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "text-align":
			out.Center = v == "center"
		}
	}
	return out
}
