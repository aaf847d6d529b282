package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int32 // ignored when Fullscreen
	Height     int32
	Fullscreen bool
	TargetFPS  int32
}

// DefaultWindow is a 1280×720 window at 60 FPS.
func DefaultWindow(title string) Window {
	return Window{Title: title, Width: 1280, Height: 720, TargetFPS: 60}
}

// Run opens the window and runs the main loop. Each frame it calls update with the frame time in
// seconds, then clears the screen to the colour returned by background and calls draw.
// Escape releases the pointer instead of quitting; close via the window button.
// setup runs once after the window (and OpenGL context) exists; teardown runs before it closes.
func Run(w Window, setup func(), update func(dt float32), background func() rl.Color, draw func(), teardown func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint | rl.FlagWindowResizable)
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), w.Title)
	} else {
		rl.InitWindow(w.Width, w.Height, w.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(w.TargetFPS)
	}
	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(background())
		draw()
		rl.EndDrawing()
	}
}
