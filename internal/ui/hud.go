package ui

import (
	_ "embed"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed museum.css
var museumCSS string

// DefaultStylesheet returns the built-in museum stylesheet.
func DefaultStylesheet() *Stylesheet {
	sheet, _ := ParseCSS(museumCSS)
	return sheet
}

// HUDState is what the overlay needs to know about the game each frame.
type HUDState struct {
	Menu    bool // start menu is showing
	Reading bool
	Locked  bool
}

// Visibility says which overlay elements are drawn.
type Visibility struct {
	Menu         bool
	Crosshair    bool
	Instructions bool
	Hint         bool
	Card         bool
}

// Visible derives the overlay from the game state: the menu hides everything else,
// instructions show only while roaming with the pointer free, the hint and card only while reading.
func Visible(s HUDState) Visibility {
	if s.Menu {
		return Visibility{Menu: true}
	}
	return Visibility{
		Crosshair:    true,
		Instructions: !s.Reading && !s.Locked,
		Hint:         s.Reading,
		Card:         s.Reading,
	}
}

// HUDText is the copy shown by the overlay.
type HUDText struct {
	Title        string
	Button       string
	Instructions string
	Hint         string
}

// HUD is the 2D layer over the museum: start menu, crosshair, banners and the opened card.
type HUD struct {
	Engine *Engine
	Card   *CardOverlay

	menu, title, button *Node
	crosshair           *Node
	instructions, hint  *Node
	vis                 Visibility
}

// NewHUD builds the overlay nodes into e. If e has no stylesheet the built-in one is used.
func NewHUD(e *Engine, text HUDText, card *CardOverlay) *HUD {
	if !e.HasStylesheet() {
		e.SetStylesheet(DefaultStylesheet())
	}
	h := &HUD{
		Engine:       e,
		Card:         card,
		menu:         NewNode("panel", "", "menu", ""),
		title:        NewNode("label", "", "menu-title", text.Title),
		button:       NewNode("button", "", "menu-button", text.Button),
		crosshair:    NewNode("panel", "", "crosshair", ""),
		instructions: NewNode("label", "banner", "instructions", text.Instructions),
		hint:         NewNode("label", "banner", "hint", text.Hint),
	}
	e.SetNodes([]*Node{h.menu, h.title, h.button, h.crosshair, h.instructions, h.hint})
	h.Update(HUDState{Menu: true})
	return h
}

// SetText replaces the overlay copy, e.g. after the layout is reloaded.
func (h *HUD) SetText(text HUDText) {
	h.title.Text = text.Title
	h.button.Text = text.Button
	h.instructions.Text = text.Instructions
	h.hint.Text = text.Hint
}

// Update shows and hides nodes for the current state.
func (h *HUD) Update(s HUDState) {
	v := Visible(s)
	h.vis = v
	h.menu.Hidden = !v.Menu
	h.title.Hidden = !v.Menu
	h.button.Hidden = !v.Menu
	h.crosshair.Hidden = !v.Crosshair
	h.instructions.Hidden = !v.Instructions
	h.hint.Hidden = !v.Hint
}

// Visibility returns what the last Update decided.
func (h *HUD) Visibility() Visibility {
	return h.vis
}

// ButtonHit reports whether point is on the start button for a screen of the given size.
func (h *HUD) ButtonHit(point rl.Vector2, screenW, screenH int32) bool {
	h.Engine.Layout(screenW, screenH)
	return Hit(h.button, point)
}

// Draw draws the card under the banners so the close hint stays readable. t is seconds since start.
func (h *HUD) Draw(t float32) {
	if h.vis.Card && h.Card != nil {
		h.Card.Draw(h.Engine, t)
	}
	h.Engine.Draw()
}
