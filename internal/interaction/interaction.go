package interaction

import (
	"love-museum/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ExitKey closes the reading overlay.
const ExitKey = rl.KeyF

// Mode is the interaction state shared by the movement and hover/click logic.
type Mode int

const (
	FreeRoam Mode = iota
	Reading
)

func (m Mode) String() string {
	switch m {
	case FreeRoam:
		return "free-roam"
	case Reading:
		return "reading"
	}
	return "unknown"
}

// State owns the current Mode, the last hover result and the mirrored pointer-lock flag.
// OnChange, if set, is called after every real mode transition.
type State struct {
	mode     Mode
	hovered  bool
	locked   bool
	OnChange func(from, to Mode)
}

// New returns a state in FreeRoam with nothing hovered and the pointer unlocked.
func New() *State {
	return &State{}
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Reading reports whether the reading overlay is open.
func (s *State) Reading() bool {
	return s.mode == Reading
}

// Hovered returns the hover result of the last Update.
func (s *State) Hovered() bool {
	return s.hovered
}

// Locked reports whether the pointer is currently locked.
func (s *State) Locked() bool {
	return s.locked
}

// Update recomputes the hover flag from the centre-screen ray and the target subtree.
// No caching and no hysteresis: every frame starts from scratch.
func (s *State) Update(cam rl.Camera3D, target *scene.Node) bool {
	s.hovered = Hovered(cam, target)
	if target != nil {
		target.Hovered = s.hovered
	}
	return s.hovered
}

// Hovered reports whether the ray through the viewport centre hits any part of target.
// A target that is not mounted yet (nil) counts as no intersection.
func Hovered(cam rl.Camera3D, target *scene.Node) bool {
	if target == nil {
		return false
	}
	return scene.RayHits(scene.CenterRay(cam), target)
}

// Click opens the reading overlay when the card is hovered. Clicking again while already
// reading changes nothing; clicking with nothing hovered is a no-op.
func (s *State) Click() {
	if !s.hovered {
		return
	}
	s.set(Reading)
}

// Exit closes the reading overlay. A no-op in FreeRoam.
func (s *State) Exit() {
	if s.mode != Reading {
		return
	}
	s.set(FreeRoam)
}

func (s *State) set(m Mode) {
	if s.mode == m {
		return
	}
	from := s.mode
	s.mode = m
	if s.OnChange != nil {
		s.OnChange(from, m)
	}
}

// Lock mirrors the pointer-lock-acquired callback.
func (s *State) Lock() {
	s.locked = true
}

// Unlock mirrors the pointer-lock-released callback.
func (s *State) Unlock() {
	s.locked = false
}
