package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	pressed  map[int32]bool
	released map[int32]bool
	click    bool
	delta    rl.Vector2
	pos      rl.Vector2
}

func (f *fakeSource) KeyPressed(k int32) bool   { return f.pressed[k] }
func (f *fakeSource) KeyReleased(k int32) bool  { return f.released[k] }
func (f *fakeSource) LeftClick() bool           { return f.click }
func (f *fakeSource) MouseDelta() rl.Vector2    { return f.delta }
func (f *fakeSource) MousePosition() rl.Vector2 { return f.pos }

func TestPollEmitsWatchedKeysInOrder(t *testing.T) {
	src := &fakeSource{
		pressed:  map[int32]bool{rl.KeyW: true, rl.KeyD: true, rl.KeyQ: true},
		released: map[int32]bool{rl.KeyA: true},
	}
	p := NewPoller(src, rl.KeyD, rl.KeyW, rl.KeyA, rl.KeyW)

	assert.Equal(t, []Event{
		{Kind: KeyDown, Key: rl.KeyD},
		{Kind: KeyDown, Key: rl.KeyW},
		{Kind: KeyUp, Key: rl.KeyA},
	}, p.Poll())
}

func TestPollClickAndDelta(t *testing.T) {
	src := &fakeSource{click: true, delta: rl.NewVector2(3, -2), pos: rl.NewVector2(640, 360)}
	p := NewPoller(src)
	assert.Equal(t, []Event{{Kind: Click, Pos: rl.NewVector2(640, 360)}}, p.Poll())
	assert.Equal(t, rl.NewVector2(3, -2), p.MouseDelta())

	src.click = false
	assert.Empty(t, p.Poll())
}

func TestTapWithinOneFrame(t *testing.T) {
	src := &fakeSource{
		pressed:  map[int32]bool{rl.KeyF: true},
		released: map[int32]bool{rl.KeyF: true},
	}
	p := NewPoller(src)
	p.Watch(rl.KeyF)
	assert.Equal(t, []Event{{Kind: KeyDown, Key: rl.KeyF}, {Kind: KeyUp, Key: rl.KeyF}}, p.Poll())
}
