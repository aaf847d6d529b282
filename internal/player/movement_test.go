package player

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

// startCamera looks down -Z from the museum entrance.
func startCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 1.7, 3),
		Target:     rl.NewVector3(0, 1.7, 2),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

func TestKeyDownUpTracksLatestEvent(t *testing.T) {
	tests := []struct {
		name string
		code int32
		get  func(InputState) bool
	}{
		{"arrow up", rl.KeyUp, func(s InputState) bool { return s.Forward }},
		{"w", rl.KeyW, func(s InputState) bool { return s.Forward }},
		{"arrow down", rl.KeyDown, func(s InputState) bool { return s.Backward }},
		{"s", rl.KeyS, func(s InputState) bool { return s.Backward }},
		{"arrow left", rl.KeyLeft, func(s InputState) bool { return s.Left }},
		{"a", rl.KeyA, func(s InputState) bool { return s.Left }},
		{"arrow right", rl.KeyRight, func(s InputState) bool { return s.Right }},
		{"d", rl.KeyD, func(s InputState) bool { return s.Right }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.KeyDown(tt.code, false)
			assert.True(t, tt.get(c.Input))
			c.KeyDown(tt.code, false)
			assert.True(t, tt.get(c.Input))
			c.KeyUp(tt.code, false)
			assert.False(t, tt.get(c.Input))
			c.KeyUp(tt.code, false)
			assert.False(t, tt.get(c.Input))
		})
	}
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	c := New()
	c.KeyDown(rl.KeyQ, false)
	c.KeyDown(rl.KeySpace, false)
	assert.Equal(t, InputState{}, c.Input)
}

func TestKeysFrozenWhileReading(t *testing.T) {
	c := New()
	c.KeyDown(rl.KeyW, false)

	c.KeyUp(rl.KeyW, true)
	c.KeyDown(rl.KeyA, true)
	assert.Equal(t, InputState{Forward: true}, c.Input)

	// releasing a key that was never pressed is harmless
	c.KeyUp(rl.KeyD, true)
	assert.Equal(t, InputState{Forward: true}, c.Input)
}

func TestForwardTick(t *testing.T) {
	c := New()
	cam := startCamera()
	c.KeyDown(rl.KeyW, false)
	c.Tick(&cam, 0.1, false)

	assert.InDelta(t, 2.7, cam.Position.Z, eps)
	assert.InDelta(t, 0, cam.Position.X, eps)
	assert.Equal(t, EyeHeight, cam.Position.Y)
	// look direction is unchanged
	assert.InDelta(t, -1, cam.Target.Z-cam.Position.Z, eps)
}

func TestDiagonalIsNotFaster(t *testing.T) {
	c := New()
	cam := startCamera()
	c.KeyDown(rl.KeyW, false)
	c.KeyDown(rl.KeyD, false)
	c.Tick(&cam, 0.1, false)

	dx := cam.Position.X - 0
	dz := cam.Position.Z - 3
	assert.InDelta(t, 0.2121, dx, eps)
	assert.InDelta(t, -0.2121, dz, eps)
	assert.InDelta(t, 0.3, rl.Vector3Length(rl.NewVector3(dx, 0, dz)), eps)
}

func TestDisplacementMagnitudeForEveryInput(t *testing.T) {
	for mask := 1; mask < 16; mask++ {
		c := New()
		c.Input = InputState{
			Forward:  mask&1 != 0,
			Backward: mask&2 != 0,
			Left:     mask&4 != 0,
			Right:    mask&8 != 0,
		}
		cam := startCamera()
		before := cam.Position
		c.Tick(&cam, 0.25, false)
		moved := rl.Vector3Length(rl.Vector3Subtract(cam.Position, before))

		d := c.Input.Direction()
		if d.X == 0 && d.Z == 0 {
			// opposite keys cancel out
			assert.InDelta(t, 0, moved, eps, "mask %04b", mask)
			continue
		}
		assert.InDelta(t, Speed*0.25, moved, eps, "mask %04b", mask)
		assert.Equal(t, EyeHeight, cam.Position.Y)
	}
}

func TestMovementFollowsLookDirection(t *testing.T) {
	c := New()
	cam := startCamera()
	// look along +X, slightly down
	cam.Target = rl.NewVector3(1, 1.2, 3)
	c.KeyDown(rl.KeyW, false)
	c.Tick(&cam, 1, false)

	assert.InDelta(t, 3, cam.Position.X, eps)
	assert.InDelta(t, 3, cam.Position.Z, eps)
	assert.Equal(t, EyeHeight, cam.Position.Y)
}

func TestTickWhileReadingOnlyPinsHeight(t *testing.T) {
	c := New()
	cam := startCamera()
	cam.Position.Y = 2.4
	cam.Target.Y = 2.4
	c.KeyDown(rl.KeyW, false)
	c.Tick(&cam, 0.1, true)

	assert.InDelta(t, 3, cam.Position.Z, eps)
	assert.Equal(t, EyeHeight, cam.Position.Y)
	assert.InDelta(t, EyeHeight, cam.Target.Y, eps)
}

func TestHeightPinnedAfterDrift(t *testing.T) {
	c := New()
	cam := startCamera()
	cam.Position.Y = -3
	c.Tick(&cam, 0.016, false)
	require.Equal(t, EyeHeight, cam.Position.Y)
}

func TestKeysCoversBindings(t *testing.T) {
	assert.ElementsMatch(t, []int32{
		rl.KeyUp, rl.KeyW, rl.KeyDown, rl.KeyS,
		rl.KeyLeft, rl.KeyA, rl.KeyRight, rl.KeyD,
	}, Keys())
}
