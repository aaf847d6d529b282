package player

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Speed is the walking speed in world units per second.
	Speed = float32(3.0)
	// EyeHeight is the Y the viewpoint is pinned to after every tick.
	EyeHeight = float32(1.7)
)

// Direction names one of the four movement flags.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// bindings maps key codes to directions. Each direction has an arrow key and a WASD alias.
var bindings = map[int32]Direction{
	rl.KeyUp:    Forward,
	rl.KeyW:     Forward,
	rl.KeyDown:  Backward,
	rl.KeyS:     Backward,
	rl.KeyLeft:  Left,
	rl.KeyA:     Left,
	rl.KeyRight: Right,
	rl.KeyD:     Right,
}

// Keys returns every key code the controller reacts to, so the input poller knows what to watch.
func Keys() []int32 {
	out := make([]int32, 0, len(bindings))
	for k := range bindings {
		out = append(out, k)
	}
	return out
}

// InputState is the set of held directions. It is only changed by KeyDown/KeyUp.
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

func (s *InputState) set(d Direction, held bool) {
	switch d {
	case Forward:
		s.Forward = held
	case Backward:
		s.Backward = held
	case Left:
		s.Left = held
	case Right:
		s.Right = held
	}
}

// Any reports whether at least one direction is held.
func (s InputState) Any() bool {
	return s.Forward || s.Backward || s.Left || s.Right
}

// Direction returns the move vector in viewpoint space (X right, Z backward), normalized to unit
// length when non-zero so diagonals are not faster than straight moves.
func (s InputState) Direction() rl.Vector3 {
	var d rl.Vector3
	if s.Forward {
		d.Z -= 1
	}
	if s.Backward {
		d.Z += 1
	}
	if s.Left {
		d.X -= 1
	}
	if s.Right {
		d.X += 1
	}
	if d.X == 0 && d.Z == 0 {
		return d
	}
	return rl.Vector3Normalize(d)
}

// Controller walks the viewpoint on the ground plane from keyboard flags.
type Controller struct {
	Input InputState
}

// New returns a controller with nothing held.
func New() *Controller {
	return &Controller{}
}

// KeyDown marks the bound direction as held. Ignored while reading; unknown codes are ignored.
func (c *Controller) KeyDown(code int32, reading bool) {
	c.key(code, true, reading)
}

// KeyUp releases the bound direction. Ignored while reading, so flags stay frozen until free roam.
func (c *Controller) KeyUp(code int32, reading bool) {
	c.key(code, false, reading)
}

func (c *Controller) key(code int32, held, reading bool) {
	if reading {
		return
	}
	d, ok := bindings[code]
	if !ok {
		return
	}
	c.Input.set(d, held)
}

// Tick moves cam by Speed*dt along its own right/forward axes (projected on the ground plane)
// and pins it to EyeHeight. While reading there is no movement but the height pin still applies.
func (c *Controller) Tick(cam *rl.Camera3D, dt float32, reading bool) {
	if !reading && c.Input.Any() {
		local := rl.Vector3Scale(c.Input.Direction(), Speed*dt)
		translate(cam, local)
	}
	pinHeight(cam)
}

// translate moves position and target together by a viewpoint-space offset (X right, Z backward).
func translate(cam *rl.Camera3D, local rl.Vector3) {
	fwd, right := groundAxes(*cam)
	offset := rl.Vector3Add(rl.Vector3Scale(right, local.X), rl.Vector3Scale(fwd, -local.Z))
	cam.Position = rl.Vector3Add(cam.Position, offset)
	cam.Target = rl.Vector3Add(cam.Target, offset)
}

// groundAxes returns the unit forward and right vectors of cam flattened onto the XZ plane.
// A camera looking straight up or down falls back to -Z forward.
func groundAxes(cam rl.Camera3D) (fwd, right rl.Vector3) {
	fwd = rl.NewVector3(cam.Target.X-cam.Position.X, 0, cam.Target.Z-cam.Position.Z)
	if rl.Vector3Length(fwd) < 1e-6 {
		fwd = rl.NewVector3(0, 0, -1)
	} else {
		fwd = rl.Vector3Normalize(fwd)
	}
	right = rl.NewVector3(-fwd.Z, 0, fwd.X)
	return fwd, right
}

// pinHeight sets the eye height and shifts the target by the same amount so the look direction is kept.
func pinHeight(cam *rl.Camera3D) {
	dy := EyeHeight - cam.Position.Y
	cam.Position.Y = EyeHeight
	cam.Target.Y += dy
}
