package scene

import (
	"testing"

	"love-museum/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// card mirrors the birthday card on the table: a group turned -0.2 rad about Y with a flat
// base and a slightly lifted cover.
func card() (*Node, *Node) {
	table := NewGroup("table", rl.NewVector3(0, 0, 0))
	c := &Node{Name: "card", Position: rl.NewVector3(0.3, 1.02, 0.5), Rotation: rl.NewVector3(0, -0.2, 0)}
	c.Add(
		&Node{Name: "card-base", Shape: primitives.Cube, Scale: rl.NewVector3(0.3, 0.01, 0.2)},
		&Node{Name: "card-cover", Shape: primitives.Cube, Position: rl.NewVector3(0, 0.01, 0), Rotation: rl.NewVector3(0.2, 0, 0), Scale: rl.NewVector3(0.3, 0.01, 0.2)},
	)
	table.Add(c)
	return table, c
}

func rayTo(from, to rl.Vector3) rl.Ray {
	return rl.NewRay(from, rl.Vector3Normalize(rl.Vector3Subtract(to, from)))
}

func TestWorldComposesParents(t *testing.T) {
	root := NewGroup("root", rl.NewVector3(1, 0, 0))
	child := &Node{Name: "child", Position: rl.NewVector3(0, 2, 0), Scale: rl.NewVector3(2, 2, 2)}
	leaf := &Node{Name: "leaf", Position: rl.NewVector3(0, 1, 0)}
	root.Add(child.Add(leaf))

	p := leaf.WorldPosition()
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, 4, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
	assert.Same(t, child, leaf.Parent())
	assert.Equal(t, 3, root.Count())
}

func TestRotationAppliesBeforeTranslation(t *testing.T) {
	n := &Node{Position: rl.NewVector3(0, 0, 5), Rotation: rl.NewVector3(0, rl.Pi/2, 0)}
	p := rl.Vector3Transform(rl.NewVector3(0, 0, 1), n.World())
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, 5, p.Z, 1e-5)
}

func TestFind(t *testing.T) {
	table, c := card()
	assert.Same(t, c, table.Find("card"))
	assert.Equal(t, "card-cover", table.Find("card-cover").Name)
	assert.Nil(t, table.Find("cake"))

	var nilNode *Node
	assert.Nil(t, nilNode.Find("card"))
}

func TestRayHitsCardSubtree(t *testing.T) {
	_, c := card()
	eye := rl.NewVector3(0.3, 1.7, 1.5)
	assert.True(t, RayHits(rayTo(eye, rl.NewVector3(0.3, 1.02, 0.5)), c))
	// edge of the rotated base, inside only because of the rotation
	assert.True(t, RayHits(rayTo(eye, rl.NewVector3(0.46, 1.02, 0.44)), c))
}

func TestRayMissesCard(t *testing.T) {
	_, c := card()
	eye := rl.NewVector3(0, 1.7, 3)
	assert.False(t, RayHits(rl.NewRay(eye, rl.NewVector3(0, 0, -1)), c))
	assert.False(t, RayHits(rayTo(eye, rl.NewVector3(1.5, 1.02, 0.5)), c))
	// pointing away
	assert.False(t, RayHits(rayTo(eye, rl.NewVector3(0.3, 1.7, 6)), c))
}

func TestRayHitsNilAndHidden(t *testing.T) {
	ray := rl.NewRay(rl.NewVector3(0, 1.7, 3), rl.NewVector3(0, 0, -1))
	assert.False(t, RayHits(ray, nil))

	_, c := card()
	aim := rayTo(rl.NewVector3(0.3, 1.7, 1.5), rl.NewVector3(0.3, 1.02, 0.5))
	c.Hidden = true
	assert.False(t, RayHits(aim, c))
}

func TestRayHitsGroupWithoutShapes(t *testing.T) {
	g := NewGroup("empty", rl.NewVector3(0, 1.7, 0))
	assert.False(t, RayHits(rl.NewRay(rl.NewVector3(0, 1.7, 3), rl.NewVector3(0, 0, -1)), g))
}

func TestRayHitsPlane(t *testing.T) {
	floor := &Node{Shape: primitives.Plane, Scale: rl.NewVector3(10, 1, 10)}
	assert.True(t, RayHits(rl.NewRay(rl.NewVector3(0, 1.7, 3), rl.NewVector3(0, -1, 0)), floor))
	assert.False(t, RayHits(rl.NewRay(rl.NewVector3(0, 1.7, 3), rl.NewVector3(0, 1, 0)), floor))
}

func TestCenterRay(t *testing.T) {
	cam := rl.Camera3D{Position: rl.NewVector3(0, 1.7, 3), Target: rl.NewVector3(0, 1.7, 1)}
	r := CenterRay(cam)
	assert.Equal(t, cam.Position, r.Position)
	assert.InDelta(t, -1, r.Direction.Z, 1e-6)
}

func TestCollectUsesHoverColour(t *testing.T) {
	_, c := card()
	yellow := rl.Yellow
	base := c.Find("card-base")
	base.Color = rl.White
	base.HoverColor = &yellow

	colours := func() []rl.Color {
		var out []rl.Color
		collect(c, rl.MatrixIdentity(), false, func(it drawItem) { out = append(out, it.color) })
		return out
	}
	require.Len(t, colours(), 2)
	assert.Equal(t, rl.White, colours()[0])

	c.Hovered = true
	assert.Equal(t, rl.Yellow, colours()[0])
}

func TestSceneFindBeforeMount(t *testing.T) {
	s := New(nil, nil)
	assert.False(t, s.Mounted())
	assert.Nil(t, s.Find("card"))

	table, c := card()
	s.Mount(table, nil)
	assert.True(t, s.Mounted())
	assert.Same(t, c, s.Find("card"))
	assert.Equal(t, float32(1.7), s.Camera.Position.Y)
}

func TestLabelPixels(t *testing.T) {
	// fovy 90: half-height of the view at depth 1 is 1 unit
	assert.InDelta(t, 50, labelPixels(0.1, 1, 90, 1000), 1e-3)
	assert.InDelta(t, 25, labelPixels(0.1, 2, 90, 1000), 1e-3)
	assert.Equal(t, float32(0), labelPixels(0.1, 0, 90, 1000))
}
