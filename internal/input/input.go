package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind is the type of a discrete input event.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	Click
)

// Event is one discrete input event. Key is set for KeyDown/KeyUp, Pos (screen pixels) for Click.
type Event struct {
	Kind Kind
	Key  int32
	Pos  rl.Vector2
}

// Source is the per-frame polled state the poller turns into events.
type Source interface {
	KeyPressed(key int32) bool
	KeyReleased(key int32) bool
	LeftClick() bool
	MouseDelta() rl.Vector2
	MousePosition() rl.Vector2
}

// Raylib reads input from the raylib window. Only valid after the window exists.
type Raylib struct{}

func (Raylib) KeyPressed(key int32) bool  { return rl.IsKeyPressed(key) }
func (Raylib) KeyReleased(key int32) bool { return rl.IsKeyReleased(key) }
func (Raylib) LeftClick() bool            { return rl.IsMouseButtonPressed(rl.MouseButtonLeft) }
func (Raylib) MouseDelta() rl.Vector2     { return rl.GetMouseDelta() }
func (Raylib) MousePosition() rl.Vector2  { return rl.GetMousePosition() }

// Poller converts raylib's "is pressed this frame" polling into the key-down / key-up / click
// events the game logic consumes. Keys are reported in the order they were registered.
type Poller struct {
	src    Source
	keys   []int32
	events []Event
}

// NewPoller watches the given keys. Duplicates are dropped.
func NewPoller(src Source, keys ...int32) *Poller {
	p := &Poller{src: src}
	p.Watch(keys...)
	return p
}

// Watch adds keys to the watched set.
func (p *Poller) Watch(keys ...int32) {
	for _, k := range keys {
		if !p.watching(k) {
			p.keys = append(p.keys, k)
		}
	}
}

func (p *Poller) watching(key int32) bool {
	for _, k := range p.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Poll returns this frame's events. The slice is reused by the next call.
func (p *Poller) Poll() []Event {
	p.events = p.events[:0]
	for _, k := range p.keys {
		if p.src.KeyPressed(k) {
			p.events = append(p.events, Event{Kind: KeyDown, Key: k})
		}
		if p.src.KeyReleased(k) {
			p.events = append(p.events, Event{Kind: KeyUp, Key: k})
		}
	}
	if p.src.LeftClick() {
		p.events = append(p.events, Event{Kind: Click, Pos: p.src.MousePosition()})
	}
	return p.events
}

// MouseDelta returns the mouse movement since the last frame.
func (p *Poller) MouseDelta() rl.Vector2 {
	return p.src.MouseDelta()
}
