package player

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestNewLookFromCamera(t *testing.T) {
	l := NewLook(startCamera(), 0)
	assert.InDelta(t, 0, l.Yaw, eps)
	assert.InDelta(t, 0, l.Pitch, eps)
	assert.Equal(t, DefaultSensitivity, l.Sensitivity)

	f := l.Forward()
	assert.InDelta(t, -1, f.Z, eps)
}

func TestRotateTurnsRightAndDown(t *testing.T) {
	cam := startCamera()
	l := NewLook(cam, 0.01)
	l.Rotate(&cam, rl.NewVector2(157.08, 0))

	dir := rl.Vector3Subtract(cam.Target, cam.Position)
	assert.InDelta(t, 1, dir.X, 1e-3)
	assert.InDelta(t, 0, dir.Z, 1e-3)

	l.Rotate(&cam, rl.NewVector2(0, 10))
	dir = rl.Vector3Subtract(cam.Target, cam.Position)
	assert.Less(t, dir.Y, float32(0))
	assert.InDelta(t, 1, rl.Vector3Length(dir), eps)
}

func TestPitchIsClamped(t *testing.T) {
	cam := startCamera()
	l := NewLook(cam, 0.01)
	l.Rotate(&cam, rl.NewVector2(0, -100000))
	assert.InDelta(t, maxPitch, l.Pitch, eps)
	l.Rotate(&cam, rl.NewVector2(0, 100000))
	assert.InDelta(t, -maxPitch, l.Pitch, eps)

	// still walkable when looking almost straight down
	c := New()
	c.KeyDown(rl.KeyW, false)
	before := cam.Position
	c.Tick(&cam, 0.1, false)
	moved := rl.Vector3Length(rl.Vector3Subtract(cam.Position, before))
	assert.InDelta(t, 0.3, moved, eps)
}
