package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the debugging overlays (FPS, heap, viewpoint). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowPosition bool

	font         rl.Font // optional; zero texture ID = raylib default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	position     rl.Vector3
	mode         string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used for the overlay text.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetViewpoint records the camera position and interaction mode shown by ShowPosition.
func (d *Debug) SetViewpoint(pos rl.Vector3, mode string) {
	d.position = pos
	d.mode = mode
}

// Lines returns the text of every enabled overlay, top to bottom. FPS and memory text are
// only recomputed every updateInterval calls.
func (d *Debug) Lines(fps int32) []string {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	var lines []string
	if d.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		lines = append(lines, d.lastMemText)
	}
	if d.ShowPosition {
		p := d.position
		lines = append(lines, fmt.Sprintf("Pos: %.2f %.2f %.2f", p.X, p.Y, p.Z), "Mode: "+d.mode)
	}
	return lines
}

// Draw renders the enabled overlays at the top-right in green. Call last in the draw loop.
func (d *Debug) Draw() {
	lines := d.Lines(rl.GetFPS())
	screenW := float32(rl.GetScreenWidth())
	y := float32(padding)
	for _, text := range lines {
		if d.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
			rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, rl.Green)
		} else {
			w := float32(rl.MeasureText(text, fontSize))
			rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
		}
		y += lineHeight
	}
}
