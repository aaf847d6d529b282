package scene

import (
	"love-museum/internal/primitives"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// labelMinPixels hides labels too small to read.
	labelMinPixels = 6
	// labelMaxDistance hides labels far down the hallway.
	labelMaxDistance = 40
)

// Textures resolves a texture path to a loaded texture. A zero ID means "not available".
type Textures interface {
	Texture(path string) rl.Texture2D
}

// Scene holds the viewpoint camera and the mounted museum tree. Until Mount is called the scene
// is empty and Find returns nil, which is how pending assets look to the rest of the game.
type Scene struct {
	Camera     rl.Camera3D
	Background rl.Color

	root   *Node
	lights []primitives.Light
	reg    *primitives.Registry
	tex    Textures
}

// New returns an empty scene with the camera at the museum entrance (0, 1.7, 3) looking down -Z, fovy 75°.
func New(reg *primitives.Registry, tex Textures) *Scene {
	s := &Scene{reg: reg, tex: tex, Background: rl.Black}
	s.Camera.Position = rl.NewVector3(0, 1.7, 3)
	s.Camera.Target = rl.NewVector3(0, 1.7, 2)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 75
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Mount installs the built museum tree and its lights.
func (s *Scene) Mount(root *Node, lights []primitives.Light) {
	s.root = root
	s.lights = lights
}

// Mounted reports whether a tree has been installed.
func (s *Scene) Mounted() bool {
	return s.root != nil
}

// Root returns the mounted tree, or nil.
func (s *Scene) Root() *Node {
	return s.root
}

// Find returns the named node of the mounted tree, or nil when nothing is mounted.
func (s *Scene) Find(name string) *Node {
	if s.root == nil {
		return nil
	}
	return s.root.Find(name)
}

type drawItem struct {
	node  *Node
	world rl.Matrix
	color rl.Color
}

// Draw renders the mounted tree. Opaque shapes go first, translucent ones after so the
// hallway walls blend over what is behind them. extra runs inside the 3D pass.
func (s *Scene) Draw(extra func(reg *primitives.Registry)) {
	rl.BeginMode3D(s.Camera)
	s.reg.SetView(s.Camera.Position, s.lights)
	if s.root != nil {
		var opaque, translucent []drawItem
		collect(s.root, rl.MatrixIdentity(), false, func(it drawItem) {
			if it.color.A < 255 {
				translucent = append(translucent, it)
			} else {
				opaque = append(opaque, it)
			}
		})
		for _, it := range opaque {
			s.drawItem(it)
		}
		for _, it := range translucent {
			s.drawItem(it)
		}
	}
	if extra != nil {
		extra(s.reg)
	}
	rl.EndMode3D()
}

// collect flattens the tree into draw items, resolving hover colours down each hovered subtree.
func collect(n *Node, parent rl.Matrix, hovered bool, add func(drawItem)) {
	if n.Hidden {
		return
	}
	hovered = hovered || n.Hovered
	world := rl.MatrixMultiply(n.Local(), parent)
	if n.Shape != "" {
		c := n.Color
		if hovered && n.HoverColor != nil {
			c = *n.HoverColor
		}
		add(drawItem{node: n, world: world, color: c})
	}
	for _, ch := range n.children {
		collect(ch, world, hovered, add)
	}
}

func (s *Scene) drawItem(it drawItem) {
	st := primitives.Style{
		Color:       it.color,
		Tiling:      it.node.Tiling,
		Unlit:       it.node.Unlit,
		DoubleSided: it.node.DoubleSided,
	}
	if it.node.HalfOpen {
		st.Clip = primitives.KeepPositiveX(it.world)
	}
	if it.node.Texture != "" && s.tex != nil {
		st.Texture = s.tex.Texture(it.node.Texture)
	}
	s.reg.Draw(it.node.Shape, it.world, st)
}

// DrawLabels draws every visible label in screen space. Call after Draw, outside the 3D pass.
func (s *Scene) DrawLabels(font rl.Font) {
	if s.root == nil {
		return
	}
	screenH := float32(rl.GetScreenHeight())
	forward := CenterRay(s.Camera).Direction
	s.root.Walk(func(n *Node, world rl.Matrix) bool {
		if n.Label == nil || n.Label.Text == "" {
			return true
		}
		pos := rl.Vector3Transform(rl.Vector3Zero(), world)
		to := rl.Vector3Subtract(pos, s.Camera.Position)
		dist := rl.Vector3DotProduct(forward, to)
		if dist <= 0.1 || dist > labelMaxDistance {
			return true
		}
		px := labelPixels(n.Label.Size, dist, s.Camera.Fovy, screenH)
		if px < labelMinPixels {
			return true
		}
		at := rl.GetWorldToScreen(pos, s.Camera)
		drawCentered(font, n.Label.Text, at, px, n.Label.Color)
		return true
	})
}

// labelPixels converts a world-space letter height at a view depth into pixels for a
// perspective camera with vertical field of view fovy (degrees).
func labelPixels(size, depth, fovy, screenH float32) float32 {
	half := math32.Tan(fovy * rl.Deg2rad / 2)
	if depth <= 0 || half <= 0 {
		return 0
	}
	return size * screenH / (2 * depth * half)
}

func drawCentered(font rl.Font, text string, at rl.Vector2, px float32, c rl.Color) {
	if font.Texture.ID != 0 {
		m := rl.MeasureTextEx(font, text, px, 1)
		rl.DrawTextEx(font, text, rl.NewVector2(at.X-m.X/2, at.Y-m.Y/2), px, 1, c)
		return
	}
	w := rl.MeasureText(text, int32(px))
	rl.DrawText(text, int32(at.X)-w/2, int32(at.Y-px/2), int32(px), c)
}
