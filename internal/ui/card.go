package ui

import (
	"strings"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	pageHeightFrac = 0.6
	pageAspect     = 0.75
	pageGap        = 6
	floatFrac      = 0.012 // float amplitude as a fraction of screen height
	textFrac       = 0.045 // text size as a fraction of page height
	linesFrac      = 1.3   // line spacing in text sizes
)

var (
	paperColor = rl.NewColor(255, 255, 255, 255)
	coverColor = rl.NewColor(0xff, 0xdd, 0xdd, 255)
	inkColor   = rl.NewColor(0, 0, 0, 255)
	dimColor   = rl.NewColor(0, 0, 0, 110)
	edgeColor  = rl.NewColor(0xda, 0xa5, 0x20, 255)
)

// CardOverlay is the opened birthday card: a picture page on the left, the message on the right.
type CardOverlay struct {
	Image rl.Texture2D // zero ID = plain cover colour
	Text  string
}

// pages returns the two page rectangles, bobbing with time t (seconds).
func pages(screenW, screenH int32, t float32) (left, right rl.Rectangle) {
	h := float32(screenH) * pageHeightFrac
	w := h * pageAspect
	cx := float32(screenW) / 2
	y := (float32(screenH)-h)/2 + math32.Sin(t)*float32(screenH)*floatFrac
	left = rl.NewRectangle(cx-pageGap/2-w, y, w, h)
	right = rl.NewRectangle(cx+pageGap/2, y, w, h)
	return left, right
}

// wrapText breaks text into lines no wider than maxWidth. Newlines are kept; a word wider
// than maxWidth gets a line of its own.
func wrapText(text string, maxWidth float32, measure func(string) float32) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			next := line + " " + w
			if measure(next) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}

// Draw renders the card centred on screen. t drives the float animation.
func (c *CardOverlay) Draw(e *Engine, t float32) {
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, sw, sh, dimColor)
	left, right := pages(sw, sh, t)

	if c.Image.ID != 0 {
		src := rl.NewRectangle(0, 0, float32(c.Image.Width), float32(c.Image.Height))
		rl.DrawTexturePro(c.Image, src, left, rl.Vector2{}, 0, rl.White)
	} else {
		rl.DrawRectangleRec(left, coverColor)
	}
	rl.DrawRectangleRec(right, paperColor)
	rl.DrawRectangleLinesEx(left, 2, edgeColor)
	rl.DrawRectangleLinesEx(right, 2, edgeColor)

	size := right.Height * textFrac
	pad := right.Width * 0.08
	lines := wrapText(c.Text, right.Width-2*pad, func(s string) float32 { return e.Measure(s, size).X })
	step := size * linesFrac
	y := right.Y + (right.Height-step*float32(len(lines)))/2
	for _, line := range lines {
		if line != "" {
			m := e.Measure(line, size)
			e.Text(line, rl.NewVector2(right.X+(right.Width-m.X)/2, y), size, inkColor)
		}
		y += step
	}
}
