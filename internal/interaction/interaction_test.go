package interaction

import (
	"testing"

	"love-museum/internal/player"
	"love-museum/internal/primitives"
	"love-museum/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card() *scene.Node {
	c := &scene.Node{Name: "card", Position: rl.NewVector3(0.3, 1.02, 0.5), Rotation: rl.NewVector3(0, -0.2, 0)}
	return c.Add(
		&scene.Node{Shape: primitives.Cube, Scale: rl.NewVector3(0.3, 0.01, 0.2)},
		&scene.Node{Shape: primitives.Cube, Position: rl.NewVector3(0, 0.01, 0), Rotation: rl.NewVector3(0.2, 0, 0), Scale: rl.NewVector3(0.3, 0.01, 0.2)},
	)
}

// lookingAtCard stands in front of the table and looks down at the card.
func lookingAtCard() rl.Camera3D {
	return rl.Camera3D{
		Position: rl.NewVector3(0.3, 1.7, 1.5),
		Target:   rl.NewVector3(0.3, 1.02, 0.5),
		Up:       rl.NewVector3(0, 1, 0),
		Fovy:     75,
	}
}

func lookingAway() rl.Camera3D {
	cam := lookingAtCard()
	cam.Target = rl.NewVector3(0.3, 1.7, 0.5)
	return cam
}

func TestHovered(t *testing.T) {
	assert.True(t, Hovered(lookingAtCard(), card()))
	assert.False(t, Hovered(lookingAway(), card()))
	assert.False(t, Hovered(lookingAtCard(), nil))
}

func TestUpdateMarksTarget(t *testing.T) {
	s := New()
	c := card()
	assert.True(t, s.Update(lookingAtCard(), c))
	assert.True(t, c.Hovered)
	assert.True(t, s.Hovered())

	assert.False(t, s.Update(lookingAway(), c))
	assert.False(t, c.Hovered)
	assert.False(t, s.Hovered())
}

func TestUpdateWithoutTarget(t *testing.T) {
	s := New()
	s.Update(lookingAtCard(), card())
	require.True(t, s.Hovered())
	// card unmounted again (e.g. assets reloading)
	assert.False(t, s.Update(lookingAtCard(), nil))
}

func TestClickWithoutHoverIsNoop(t *testing.T) {
	s := New()
	s.Click()
	assert.Equal(t, FreeRoam, s.Mode())

	s.Update(lookingAtCard(), card())
	s.Click()
	require.Equal(t, Reading, s.Mode())
	s.Update(lookingAway(), card())
	s.Click()
	assert.Equal(t, Reading, s.Mode())
}

func TestClickWhileHoveredIsIdempotent(t *testing.T) {
	var transitions []Mode
	s := New()
	s.OnChange = func(_, to Mode) { transitions = append(transitions, to) }
	s.Update(lookingAtCard(), card())

	s.Click()
	s.Click()
	s.Click()
	assert.Equal(t, Reading, s.Mode())
	assert.True(t, s.Reading())
	assert.Equal(t, []Mode{Reading}, transitions)
}

func TestExit(t *testing.T) {
	var transitions []Mode
	s := New()
	s.OnChange = func(_, to Mode) { transitions = append(transitions, to) }

	s.Exit()
	assert.Equal(t, FreeRoam, s.Mode())
	assert.Empty(t, transitions)

	s.Update(lookingAtCard(), card())
	s.Click()
	s.Exit()
	assert.Equal(t, FreeRoam, s.Mode())
	assert.Equal(t, []Mode{Reading, FreeRoam}, transitions)
}

func TestPointerLockMirror(t *testing.T) {
	s := New()
	assert.False(t, s.Locked())
	s.Lock()
	assert.True(t, s.Locked())
	s.Unlock()
	assert.False(t, s.Locked())
	assert.Equal(t, FreeRoam, s.Mode())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "free-roam", FreeRoam.String())
	assert.Equal(t, "reading", Reading.String())
	assert.Equal(t, "unknown", Mode(7).String())
}

// Clicking the hovered card and holding movement keys in the same frame must not move the viewpoint.
func TestClickSuspendsMovementSameTick(t *testing.T) {
	s := New()
	move := player.New()
	cam := lookingAtCard()
	before := cam.Position

	move.KeyDown(rl.KeyW, s.Reading())
	move.KeyDown(rl.KeyD, s.Reading())
	s.Update(cam, card())
	s.Click()
	move.Tick(&cam, 0.1, s.Reading())

	assert.Equal(t, Reading, s.Mode())
	assert.Equal(t, before, cam.Position)
}
