package layout

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"love-museum/internal/primitives"
	"love-museum/internal/scene"
)

// Frame proportions, in picture heights.
const (
	frameBorder    = 0.1
	frameThickness = 0.05
	backingDepth   = 0.02
	imageDepth     = 0.002
)

var backingColor = rl.NewColor(0x22, 0x22, 0x22, 255)

// Aspects reports the width/height ratio of a loaded image. Zero or negative means unknown.
type Aspects interface {
	Aspect(path string) float32
}

func v3(v Vec3) rl.Vector3 { return rl.NewVector3(v[0], v[1], v[2]) }
func v2(v Vec2) rl.Vector2 { return rl.NewVector2(v[0], v[1]) }

func shape(name, kind string, pos, scale rl.Vector3, c rl.Color) *scene.Node {
	return &scene.Node{Name: name, Shape: kind, Position: pos, Scale: scale, Color: c}
}

// Build expands the layout into a scene tree and its point lights. aspects may be nil, in which
// case every picture is square.
func Build(l Layout, aspects Aspects) (*scene.Node, []primitives.Light) {
	root := scene.NewGroup("museum", rl.Vector3{})
	root.Add(
		buildFloor(l.Floor),
		buildBackdrop(l.Backdrop),
		buildHallway(l.Hallway, aspects),
		buildTable(l.Table, l.Card, aspects),
	)

	lights := make([]primitives.Light, 0, len(l.Lights)+1)
	for _, li := range l.Lights {
		lights = append(lights, light(li, rl.Vector3{}))
	}
	if c := l.Table.Cake; c.Light.Intensity > 0 {
		lights = append(lights, light(c.Light, rl.Vector3Add(v3(l.Table.Position), v3(c.Position))))
	}
	return root, lights
}

func light(l Light, origin rl.Vector3) primitives.Light {
	return primitives.Light{
		Position:  rl.Vector3Add(origin, v3(l.Position)),
		Color:     color(l.Color, rl.White),
		Intensity: l.Intensity,
		Range:     l.Range,
	}
}

func buildFloor(f Floor) *scene.Node {
	return shape("floor", primitives.Plane, rl.Vector3{}, rl.NewVector3(f.Size[0], 1, f.Size[1]), color(f.Color, backingColor))
}

func buildBackdrop(b Backdrop) *scene.Node {
	if b.Texture == "" || b.Radius <= 0 {
		return nil
	}
	n := shape("backdrop", primitives.Cylinder, v3(b.Position), rl.NewVector3(2*b.Radius, b.Height, 2*b.Radius), rl.White)
	n.Rotation = v3(b.Rotation)
	n.Texture = b.Texture
	// The unit cylinder wraps the texture once around; the visible half shows it whole.
	n.Tiling = rl.NewVector2(2, 1)
	n.DoubleSided = true
	n.HalfOpen = true
	return n
}

func buildHallway(h Hallway, aspects Aspects) *scene.Node {
	g := scene.NewGroup("hallway", rl.Vector3{})
	midZ := h.StartZ + h.Length/2
	floorTiling := v2(h.FloorTiling)

	ext := shape("hallway-entry", primitives.Plane, rl.NewVector3(0, 0.01, h.StartZ-1), rl.NewVector3(h.Width, 1, 2), rl.White)
	ext.Texture, ext.Tiling = h.FloorTexture, floorTiling
	floor := shape("hallway-floor", primitives.Plane, rl.NewVector3(0, 0.01, midZ), rl.NewVector3(h.Width, 1, h.Length), rl.White)
	floor.Texture, floor.Tiling = h.FloorTexture, floorTiling

	ceiling := shape("ceiling", primitives.Plane, rl.NewVector3(0, h.Height, midZ), rl.NewVector3(h.Width, 1, h.Length), color(h.CeilingColor, rl.Gold))
	ceiling.Rotation = rl.NewVector3(math32.Pi, 0, 0)

	wallColor := withOpacity(color(h.WallColor, rl.White), h.WallOpacity)
	wall := func(name string, pos, size rl.Vector3) *scene.Node {
		w := shape(name, primitives.Cube, pos, size, wallColor)
		w.Texture, w.Tiling = h.WallTexture, v2(h.WallTiling)
		return w
	}
	g.Add(
		ext, floor, ceiling,
		wall("wall-left", rl.NewVector3(-h.Width/2, h.Height/2, midZ), rl.NewVector3(0.1, h.Height, h.Length)),
		wall("wall-right", rl.NewVector3(h.Width/2, h.Height/2, midZ), rl.NewVector3(0.1, h.Height, h.Length)),
		wall("wall-end", rl.NewVector3(0, h.Height/2, h.StartZ+h.Length), rl.NewVector3(h.Width, h.Height, 0.1)),
	)

	border := color(h.FrameColor, rl.Gold)
	for _, f := range h.Frames {
		g.Add(BuildFrame(f, aspectOf(aspects, f.Image), border))
	}
	g.Add(buildHeart(h.Heart))
	return g
}

func aspectOf(a Aspects, path string) float32 {
	if a == nil {
		return 1
	}
	return a.Aspect(path)
}

// BuildFrame expands a picture into its group: four border bars, a dark backing and the
// unlit image. The picture is one unit tall and aspect units wide before Scale.
func BuildFrame(f Frame, aspect float32, border rl.Color) *scene.Node {
	if aspect <= 0 {
		aspect = 1
	}
	w, h := aspect, float32(1)
	g := scene.NewGroup("frame:"+f.Image, v3(f.Position))
	g.Rotation = v3(f.Rotation)
	if f.Scale > 0 {
		g.Scale = rl.NewVector3(f.Scale, f.Scale, f.Scale)
	}
	bar := func(name string, pos, size rl.Vector3) *scene.Node {
		return shape(name, primitives.Cube, pos, size, border)
	}
	image := shape("image", primitives.Cube, rl.Vector3{}, rl.NewVector3(w, h, imageDepth), rl.White)
	image.Texture = f.Image
	image.Unlit = true
	g.Add(
		bar("border-top", rl.NewVector3(0, h/2+frameBorder/2, 0), rl.NewVector3(w+2*frameBorder, frameBorder, frameThickness)),
		bar("border-bottom", rl.NewVector3(0, -h/2-frameBorder/2, 0), rl.NewVector3(w+2*frameBorder, frameBorder, frameThickness)),
		bar("border-left", rl.NewVector3(-w/2-frameBorder/2, 0, 0), rl.NewVector3(frameBorder, h, frameThickness)),
		bar("border-right", rl.NewVector3(w/2+frameBorder/2, 0, 0), rl.NewVector3(frameBorder, h, frameThickness)),
		shape("backing", primitives.Cube, rl.NewVector3(0, 0, -frameThickness/2-backingDepth/2), rl.NewVector3(w+2*frameBorder, h+2*frameBorder, backingDepth), backingColor),
		image,
	)
	return g
}

// buildHeart approximates the heart with a diamond and two lobes.
func buildHeart(h Heart) *scene.Node {
	g := scene.NewGroup("heart", v3(h.Position))
	c := color(h.Color, rl.Red)
	s := h.Scale
	if s <= 0 {
		s = 1
	}
	body := scene.NewGroup("heart-body", rl.NewVector3(0, 1.1, 0))
	body.Scale = rl.NewVector3(s, s, s/2)
	lobe := float32(0.3536) // half the diamond's edge along each axis
	diamond := shape("heart-diamond", primitives.Cube, rl.Vector3{}, rl.NewVector3(1, 1, 1), c)
	diamond.Rotation = rl.NewVector3(0, 0, math32.Pi/4)
	body.Add(
		diamond,
		shape("heart-lobe-left", primitives.Sphere, rl.NewVector3(-lobe, lobe, 0), rl.NewVector3(1, 1, 1), c),
		shape("heart-lobe-right", primitives.Sphere, rl.NewVector3(lobe, lobe, 0), rl.NewVector3(1, 1, 1), c),
	)
	g.Add(body)
	if h.Text != "" {
		g.Add(&scene.Node{
			Name:     "heart-caption",
			Position: v3(h.TextOffset),
			Label:    &scene.Label{Text: h.Text, Size: h.TextSize, Color: color(h.TextColor, rl.White)},
		})
	}
	return g
}

func buildTable(t Table, card Card, aspects Aspects) *scene.Node {
	g := scene.NewGroup("table", v3(t.Position))
	size := v3(t.Size)
	g.Add(shape("table-top", primitives.Cube, rl.NewVector3(0, size.Y/2, 0), size, color(t.Color, rl.Brown)))
	g.Add(BuildCard(card))
	g.Add(buildCake(t.Cake))
	border := color(t.FrameColor, rl.Gold)
	for _, f := range t.Frames {
		g.Add(BuildFrame(f, aspectOf(aspects, f.Image), border))
	}
	return g
}

// BuildCard builds the clickable card: a flat base that turns HoverColor while hovered, a
// tilted cover and a caption. The group is named CardNode.
func BuildCard(c Card) *scene.Node {
	g := scene.NewGroup(CardNode, v3(c.Position))
	g.Rotation = rl.NewVector3(0, c.RotationY, 0)
	size := v3(c.Size)
	base := shape("card-base", primitives.Cube, rl.Vector3{}, size, color(c.Color, rl.White))
	if c.HoverColor != "" {
		hc := color(c.HoverColor, rl.Yellow)
		base.HoverColor = &hc
	}
	cover := shape("card-cover", primitives.Cube, rl.NewVector3(0, size.Y, 0), size, color(c.CoverColor, rl.Pink))
	cover.Rotation = rl.NewVector3(c.CoverTilt, 0, 0)
	g.Add(base, cover)
	if c.Label != "" {
		g.Add(&scene.Node{
			Name:     "card-label",
			Position: rl.NewVector3(0, 0.05, 0),
			Label:    &scene.Label{Text: c.Label, Size: c.LabelSize, Color: color(c.LabelColor, rl.Red)},
		})
	}
	return g
}

func buildCake(c Cake) *scene.Node {
	g := scene.NewGroup("cake", v3(c.Position))
	g.Add(shape("cake-body", primitives.Cylinder, rl.Vector3{}, rl.NewVector3(2*c.Radius, c.Height, 2*c.Radius), color(c.Color, rl.Pink)))

	// Unit torus ring radius is 0.5; the border sits just inside the cake edge.
	ring := (c.Radius - 0.02) * 2
	for _, y := range []float32{c.Height / 2, -c.Height / 2} {
		t := shape("cake-border", primitives.Torus, rl.NewVector3(0, y, 0), rl.NewVector3(ring, ring, ring), rl.White)
		t.Rotation = rl.NewVector3(math32.Pi/2, 0, 0)
		t.Texture, t.Tiling = c.Texture, v2(c.Tiling)
		g.Add(t)
	}

	cd := c.Candles
	wax := color(cd.Color, rl.White)
	flame := color(cd.FlameColor, rl.Orange)
	for _, p := range CandlePositions(cd, c.Height) {
		candle := scene.NewGroup("candle", p)
		f := shape("flame", primitives.Sphere, rl.NewVector3(0, cd.Height/2+cd.FlameRadius, 0), rl.NewVector3(2*cd.FlameRadius, 2*cd.FlameRadius, 2*cd.FlameRadius), flame)
		f.Unlit = true
		candle.Add(
			shape("wax", primitives.Cylinder, rl.Vector3{}, rl.NewVector3(2*cd.Radius, cd.Height, 2*cd.Radius), wax),
			f,
		)
		g.Add(candle)
	}
	return g
}
