package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"love-museum/internal/input"
	"love-museum/internal/interaction"
	"love-museum/internal/layout"
	"love-museum/internal/ui"
)

// Update runs one frame of game logic, in this order: poll input, pointer lock/unlock,
// movement key events, mouse look, hover, click/exit, movement, fireworks, overlay state.
func (g *Game) Update(dt float32) {
	g.clock += dt
	g.pollReload()
	events := g.poller.Poll()
	if g.screen == Menu {
		g.updateMenu(events)
		return
	}

	// A click that acquires the lock is not also a click on the card.
	clickUsed := false
	for _, ev := range events {
		switch {
		case ev.Kind == input.Click && !g.state.Locked():
			g.pointer.Lock()
			g.state.Lock()
			clickUsed = true
			g.log.Debug("pointer locked")
		case ev.Kind == input.KeyDown && ev.Key == UnlockKey && g.state.Locked():
			g.pointer.Unlock()
			g.state.Unlock()
			g.log.Debug("pointer released")
		}
	}

	reading := g.state.Reading()
	for _, ev := range events {
		switch ev.Kind {
		case input.KeyDown:
			g.move.KeyDown(ev.Key, reading)
		case input.KeyUp:
			g.move.KeyUp(ev.Key, reading)
		}
	}

	cam := &g.scene.Camera
	if g.state.Locked() {
		g.look.Rotate(cam, g.poller.MouseDelta())
	}

	g.state.Update(*cam, g.scene.Find(layout.CardNode))

	for _, ev := range events {
		switch {
		case ev.Kind == input.Click && !clickUsed:
			g.state.Click()
		case ev.Kind == input.KeyDown && ev.Key == interaction.ExitKey:
			g.state.Exit()
		}
	}

	g.move.Tick(cam, dt, g.state.Reading())
	g.fx.Update(dt)
	g.hud.Update(g.hudState())
	g.dbg.SetViewpoint(cam.Position, g.state.Mode().String())
}

func (g *Game) updateMenu(events []input.Event) {
	w, h := g.screenSize()
	for _, ev := range events {
		start := ev.Kind == input.KeyDown && ev.Key == rl.KeyEnter
		if ev.Kind == input.Click && g.hud.ButtonHit(ev.Pos, w, h) {
			start = true
		}
		if start {
			g.enterMuseum()
			return
		}
	}
	g.hud.Update(g.hudState())
}

func (g *Game) enterMuseum() {
	g.screen = Museum
	g.hud.Update(g.hudState())
	g.log.Info("entered museum")
}

func (g *Game) hudState() ui.HUDState {
	return ui.HUDState{
		Menu:    g.screen == Menu,
		Reading: g.state.Reading(),
		Locked:  g.state.Locked(),
	}
}

// loadAssets uploads pending textures and mounts the museum once they are known, so picture
// frames get their real proportions. Until then the card does not exist and cannot be hovered.
// A reloaded layout is mounted the same way.
func (g *Game) loadAssets() {
	if g.scene.Mounted() && !g.stale {
		return
	}
	g.stale = false
	loaded, missing := g.tex.LoadPending()
	if missing > 0 {
		g.log.Warn("some textures are missing", zap.Int("loaded", loaded), zap.Int("missing", missing))
	} else {
		g.log.Info("textures loaded", zap.Int("count", loaded))
	}
	g.card.Image = g.tex.Texture(g.layout.Overlay.CardImage)
	g.mount(g.tex)
}

// Draw renders the frame: the museum and its labels, then the overlay, then debug text.
func (g *Game) Draw() {
	g.loadAssets()
	if g.screen == Menu {
		g.hud.Draw(g.clock)
		return
	}
	g.scene.Draw(g.fx.Draw)
	g.scene.DrawLabels(g.hud.Engine.Font())
	g.hud.Draw(g.clock)
	g.dbg.Draw()
}
