package player

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxPitch keeps the view just short of straight up/down so the ground axes stay defined.
const maxPitch = 89 * math32.Pi / 180

// DefaultSensitivity is radians of rotation per pixel of mouse movement.
const DefaultSensitivity = float32(0.002)

// Look turns the viewpoint from pointer-locked mouse movement.
// Yaw 0 looks down -Z; positive yaw turns left. Pitch is positive when looking up.
type Look struct {
	Yaw         float32
	Pitch       float32
	Sensitivity float32
}

// NewLook derives yaw and pitch from the camera's current look direction.
func NewLook(cam rl.Camera3D, sensitivity float32) *Look {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	l := &Look{Sensitivity: sensitivity}
	dir := rl.Vector3Subtract(cam.Target, cam.Position)
	if rl.Vector3Length(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
		l.Pitch = clampPitch(math32.Asin(dir.Y))
		l.Yaw = math32.Atan2(-dir.X, -dir.Z)
	}
	return l
}

// Rotate applies a mouse delta in pixels and points cam along the new direction.
func (l *Look) Rotate(cam *rl.Camera3D, delta rl.Vector2) {
	l.Yaw -= delta.X * l.Sensitivity
	l.Pitch = clampPitch(l.Pitch - delta.Y*l.Sensitivity)
	l.Apply(cam)
}

// Apply sets cam.Target one unit in front of cam.Position along yaw/pitch.
func (l *Look) Apply(cam *rl.Camera3D) {
	cam.Target = rl.Vector3Add(cam.Position, l.Forward())
}

// Forward returns the unit look direction.
func (l *Look) Forward() rl.Vector3 {
	cp := math32.Cos(l.Pitch)
	return rl.NewVector3(-math32.Sin(l.Yaw)*cp, math32.Sin(l.Pitch), -math32.Cos(l.Yaw)*cp)
}

func clampPitch(p float32) float32 {
	if p > maxPitch {
		return maxPitch
	}
	if p < -maxPitch {
		return -maxPitch
	}
	return p
}
