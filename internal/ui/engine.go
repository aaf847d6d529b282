package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFontEx(path, 64, nil)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font; zero texture ID means raylib's default font.
func (e *Engine) Font() rl.Font {
	return e.font
}

// Unload releases the loaded font.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		if !rule.Matches(n) {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

func (e *Engine) ensureStyles() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
	}
	e.cacheValid = true
}

// Style returns the resolved style of n, or the default style if n is not in the engine.
func (e *Engine) Style(n *Node) ComputedStyle {
	e.ensureStyles()
	for i, m := range e.nodes {
		if m == n {
			return e.cachedStyles[i]
		}
	}
	return DefaultComputedStyle()
}

// layoutRect places a node on a screenW×screenH screen. Percent sizes are of the screen;
// percent positions spread the remaining space (50% centres the node).
func layoutRect(style ComputedStyle, screenW, screenH int32) rl.Rectangle {
	w, h := style.Width, style.Height
	if style.WidthPct >= 0 {
		w = screenW * style.WidthPct / 100
	}
	if style.HeightPct >= 0 {
		h = screenH * style.HeightPct / 100
	}
	x, y := style.Left, style.Top
	if style.LeftPct >= 0 {
		x = (screenW - w) * style.LeftPct / 100
	}
	if style.TopPct >= 0 {
		y = (screenH - h) * style.TopPct / 100
	}
	return rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
}

// Layout resolves every node's Bounds for the given screen size.
func (e *Engine) Layout(screenW, screenH int32) {
	e.ensureStyles()
	for i, n := range e.nodes {
		n.Bounds = layoutRect(e.cachedStyles[i], screenW, screenH)
	}
}

// Hit reports whether point lies inside a visible node's bounds (as of the last Layout).
func Hit(n *Node, point rl.Vector2) bool {
	if n == nil || n.Hidden {
		return false
	}
	return rl.CheckCollisionPointRec(point, n.Bounds)
}

// Draw lays out and draws all visible nodes: background, border, then text.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		if n.Hidden {
			continue
		}
		style := e.cachedStyles[i]
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			e.drawText(n, style)
		}
	}
}

func (e *Engine) drawText(n *Node, style ComputedStyle) {
	size := float32(style.FontSize)
	pad := float32(style.Padding)
	pos := rl.NewVector2(n.Bounds.X+pad, n.Bounds.Y+pad)
	if style.Center {
		m := e.Measure(n.Text, size)
		pos = rl.NewVector2(n.Bounds.X+(n.Bounds.Width-m.X)/2, n.Bounds.Y+(n.Bounds.Height-m.Y)/2)
	}
	e.Text(n.Text, pos, size, style.Color)
}

// Measure returns the drawn size of text at the given font size.
func (e *Engine) Measure(text string, size float32) rl.Vector2 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, size, 1)
	}
	return rl.NewVector2(float32(rl.MeasureText(text, int32(size))), size)
}

// Text draws text with the engine font.
func (e *Engine) Text(text string, pos rl.Vector2, size float32, c rl.Color) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, pos, size, 1, c)
		return
	}
	rl.DrawText(text, int32(pos.X), int32(pos.Y), int32(size), c)
}

// HasStylesheet returns whether a stylesheet with rules is set.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}
