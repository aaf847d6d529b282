package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"love-museum/internal/assets"
	"love-museum/internal/debug"
	"love-museum/internal/engineconfig"
	"love-museum/internal/fireworks"
	"love-museum/internal/fonts"
	"love-museum/internal/input"
	"love-museum/internal/interaction"
	"love-museum/internal/layout"
	"love-museum/internal/logger"
	"love-museum/internal/player"
	"love-museum/internal/primitives"
	"love-museum/internal/scene"
	"love-museum/internal/ui"
)

// Screen is the top-level state: the start menu or the museum itself.
type Screen int

const (
	Menu Screen = iota
	Museum
)

func (s Screen) String() string {
	if s == Menu {
		return "menu"
	}
	return "museum"
}

// UnlockKey releases the pointer.
const UnlockKey = rl.KeyEscape

// fireworksLift places bursts above the cake.
var fireworksLift = rl.NewVector3(0, 1, 0)

// Pointer captures and releases the OS cursor.
type Pointer interface {
	Lock()
	Unlock()
}

type rlPointer struct{}

func (rlPointer) Lock()   { rl.DisableCursor() }
func (rlPointer) Unlock() { rl.EnableCursor() }

// RaylibPointer is the window's cursor.
var RaylibPointer Pointer = rlPointer{}

// Options configure a Game.
type Options struct {
	Prefs  engineconfig.Prefs
	Layout layout.Layout
	Log    *logger.Logger
	// CSSPath optionally replaces the built-in HUD stylesheet.
	CSSPath string
	// Font is a font family searched for under the asset and assets/fonts directories.
	Font string
	// Seed seeds the fireworks.
	Seed uint64
	// Reload delivers edited layouts while the museum runs (see layout.Watch). May be nil.
	Reload <-chan layout.Layout
}

// Game ties input, movement, interaction, the scene and the overlay together.
type Game struct {
	screen Screen
	prefs  engineconfig.Prefs
	layout layout.Layout
	log    *logger.Logger

	reg    *primitives.Registry
	tex    *assets.Cache
	scene  *scene.Scene
	poller *input.Poller
	move   *player.Controller
	look   *player.Look
	state  *interaction.State
	fx     *fireworks.System
	hud    *ui.HUD
	card   *ui.CardOverlay
	dbg    *debug.Debug

	reload     <-chan layout.Layout
	stale      bool
	pointer    Pointer
	screenSize func() (int32, int32)
	clock      float32
	cssPath    string
	font       string
}

// New builds a game on the menu screen. Nothing touches the GPU until Setup and Draw.
func New(opts Options, src input.Source, pointer Pointer) *Game {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	g := &Game{
		prefs:      opts.Prefs,
		layout:     opts.Layout,
		log:        log,
		reg:        primitives.NewRegistry(),
		move:       player.New(),
		state:      interaction.New(),
		fx:         fireworks.New(opts.Seed),
		dbg:        debug.New(),
		reload:     opts.Reload,
		pointer:    pointer,
		screenSize: func() (int32, int32) { return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()) },
		cssPath:    opts.CSSPath,
		font:       opts.Font,
	}
	g.tex = assets.New(opts.Prefs.AssetDir, log.Named("assets"))
	g.scene = scene.New(g.reg, g.tex)
	g.scene.Background = layoutColor(opts.Layout.Background)
	if opts.Prefs.FOV > 0 {
		g.scene.Camera.Fovy = opts.Prefs.FOV
	}
	g.look = player.NewLook(g.scene.Camera, opts.Prefs.MouseSensitivity)

	keys := append(player.Keys(), interaction.ExitKey, UnlockKey, rl.KeyEnter)
	g.poller = input.NewPoller(src, keys...)

	g.card = &ui.CardOverlay{Text: opts.Layout.Overlay.CardText}
	g.hud = ui.NewHUD(ui.New(), hudText(opts.Layout), g.card)

	g.dbg.ShowFPS = opts.Prefs.ShowFPS
	g.dbg.ShowPosition = opts.Prefs.ShowPosition
	g.state.OnChange = g.modeChanged
	g.tex.Request(opts.Layout.Textures()...)
	return g
}

func hudText(l layout.Layout) ui.HUDText {
	return ui.HUDText{
		Title:        l.Title,
		Button:       l.Overlay.Button,
		Instructions: l.Overlay.Instructions,
		Hint:         l.Overlay.Hint,
	}
}

func layoutColor(s string) rl.Color {
	c, err := layout.ParseColor(s)
	if err != nil {
		return rl.Black
	}
	return c
}

// Screen returns the current top-level screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Mode returns the interaction mode.
func (g *Game) Mode() interaction.Mode {
	return g.state.Mode()
}

// Camera returns the viewpoint.
func (g *Game) Camera() rl.Camera3D {
	return g.scene.Camera
}

// Setup loads the HUD stylesheet and font. Call once the window exists.
func (g *Game) Setup() {
	if g.cssPath != "" {
		if err := g.hud.Engine.LoadCSS(g.cssPath); err != nil {
			g.log.Warn("stylesheet not loaded, using built-in", zap.String("path", g.cssPath), zap.Error(err))
		}
	}
	if g.font != "" {
		path, err := fonts.Find(fonts.BaseDirs(g.prefs.AssetDir), g.font)
		if err == nil {
			err = g.hud.Engine.LoadFont(path)
		}
		if err != nil {
			g.log.Warn("font not found, using default", zap.String("family", g.font), zap.Error(err))
		} else {
			g.dbg.SetFont(g.hud.Engine.Font())
			g.log.Debug("font loaded", zap.String("path", path))
		}
	}
}

// Background is the clear colour for this frame.
func (g *Game) Background() rl.Color {
	if g.screen == Menu {
		return rl.Black
	}
	return g.scene.Background
}

// Teardown releases GPU resources.
func (g *Game) Teardown() {
	g.tex.Unload()
	g.reg.Unload()
	g.hud.Engine.Unload()
	_ = g.log.Sync()
}

func (g *Game) modeChanged(from, to interaction.Mode) {
	g.log.Info("mode changed", zap.Stringer("from", from), zap.Stringer("to", to))
	if to != interaction.Reading {
		return
	}
	origin := g.scene.Camera.Position
	if cake := g.scene.Find("cake"); cake != nil {
		origin = cake.WorldPosition()
	}
	g.fx.Spawn(rl.Vector3Add(origin, fireworksLift))
}

// mount builds the museum tree into the scene. Pictures without a known aspect are square.
func (g *Game) mount(aspects layout.Aspects) {
	root, lights := layout.Build(g.layout, aspects)
	g.scene.Mount(root, lights)
	g.log.Info("museum mounted", zap.Int("nodes", root.Count()), zap.Int("lights", len(lights)))
}

// pollReload swaps in the newest edited layout, if any. The museum is rebuilt on the next Draw,
// once its new textures are loaded; the viewpoint and mode are kept.
func (g *Game) pollReload() {
	if g.reload == nil {
		return
	}
	select {
	case l, ok := <-g.reload:
		if !ok {
			g.reload = nil
			return
		}
		g.layout = l
		g.scene.Background = layoutColor(l.Background)
		g.card.Text = l.Overlay.CardText
		g.hud.SetText(hudText(l))
		g.tex.Request(l.Textures()...)
		g.stale = true
		g.log.Info("layout reloaded", zap.String("title", l.Title))
	default:
	}
}
