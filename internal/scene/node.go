package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is text anchored at a node's origin and drawn in the 2D pass, facing the viewer.
// Size is the letter height in world units.
type Label struct {
	Text  string
	Size  float32
	Color rl.Color
}

// Node is one element of the museum: either a group (no Shape) or a unit primitive
// (see primitives.Shapes) placed by Position, Rotation (Euler radians) and Scale.
// A zero Scale component is treated as 1.
type Node struct {
	Name        string
	Shape       string
	Position    rl.Vector3
	Rotation    rl.Vector3
	Scale       rl.Vector3
	Color       rl.Color
	HoverColor  *rl.Color // used instead of Color while an ancestor (or the node) is hovered
	Texture     string
	Tiling      rl.Vector2
	Unlit       bool
	DoubleSided bool
	HalfOpen    bool // draw only the local +X half (open half cylinder)
	Label       *Label
	Hidden      bool
	Hovered     bool

	parent   *Node
	children []*Node
}

// NewGroup returns an empty group node at pos.
func NewGroup(name string, pos rl.Vector3) *Node {
	return &Node{Name: name, Position: pos}
}

// Add appends children and returns n so trees can be built inline.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Children returns the direct children.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

func orOne(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// Local returns the node transform: scale, then rotation, then translation.
func (n *Node) Local() rl.Matrix {
	s := rl.MatrixScale(orOne(n.Scale.X), orOne(n.Scale.Y), orOne(n.Scale.Z))
	r := rl.MatrixRotateXYZ(n.Rotation)
	t := rl.MatrixTranslate(n.Position.X, n.Position.Y, n.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(s, r), t)
}

// World returns the node transform composed with every ancestor.
func (n *Node) World() rl.Matrix {
	if n.parent == nil {
		return n.Local()
	}
	return rl.MatrixMultiply(n.Local(), n.parent.World())
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3Zero(), n.World())
}

// Find returns the first node named name in the subtree (depth first), or nil.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Walk visits n and its descendants with their world transforms. Returning false from fn
// skips that node's children. Hidden subtrees are skipped.
func (n *Node) Walk(fn func(node *Node, world rl.Matrix) bool) {
	parent := rl.MatrixIdentity()
	if n.parent != nil {
		parent = n.parent.World()
	}
	n.walk(parent, fn)
}

func (n *Node) walk(parent rl.Matrix, fn func(*Node, rl.Matrix) bool) {
	if n.Hidden {
		return
	}
	world := rl.MatrixMultiply(n.Local(), parent)
	if !fn(n, world) {
		return
	}
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Count returns the number of nodes in the subtree.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}
