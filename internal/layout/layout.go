package layout

import (
	"github.com/chewxy/math32"
)

// CardNode is the name of the clickable card group in the built scene.
const CardNode = "card"

// Vec2 and Vec3 are written as flow sequences ([x, y, z]) in the layout file.
type (
	Vec2 [2]float32
	Vec3 [3]float32
)

// Layout is the museum content: rooms, props, pictures, lights and overlay text.
type Layout struct {
	Title      string   `yaml:"title"`
	Background string   `yaml:"background"`
	Floor      Floor    `yaml:"floor"`
	Backdrop   Backdrop `yaml:"backdrop"`
	Lights     []Light  `yaml:"lights"`
	Hallway    Hallway  `yaml:"hallway"`
	Table      Table    `yaml:"table"`
	Card       Card     `yaml:"card"`
	Overlay    Overlay  `yaml:"overlay"`
}

// Floor is the square floor under the table area.
type Floor struct {
	Size  Vec2   `yaml:"size,flow"`
	Color string `yaml:"color"`
}

// Backdrop is the curved picture screen behind the entrance: half of an open cylinder.
type Backdrop struct {
	Texture  string  `yaml:"texture"`
	Radius   float32 `yaml:"radius"`
	Height   float32 `yaml:"height"`
	Position Vec3    `yaml:"position,flow"`
	Rotation Vec3    `yaml:"rotation,flow"`
}

// Light is a point light. Range 0 means no falloff.
type Light struct {
	Position  Vec3    `yaml:"position,flow"`
	Color     string  `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
	Range     float32 `yaml:"range,omitempty"`
}

// Hallway is the corridor running down +Z from StartZ, lined with pictures.
type Hallway struct {
	Length       float32 `yaml:"length"`
	Width        float32 `yaml:"width"`
	Height       float32 `yaml:"height"`
	StartZ       float32 `yaml:"start_z"`
	FloorTexture string  `yaml:"floor_texture"`
	FloorTiling  Vec2    `yaml:"floor_tiling,flow"`
	WallTexture  string  `yaml:"wall_texture"`
	WallTiling   Vec2    `yaml:"wall_tiling,flow"`
	WallColor    string  `yaml:"wall_color"`
	WallOpacity  float32 `yaml:"wall_opacity"`
	CeilingColor string  `yaml:"ceiling_color"`
	FrameColor   string  `yaml:"frame_color"`
	Frames       []Frame `yaml:"frames"`
	Heart        Heart   `yaml:"heart"`
}

// Frame is one framed picture. The picture is one unit tall and as wide as its aspect ratio.
type Frame struct {
	Image    string  `yaml:"image"`
	Position Vec3    `yaml:"position,flow"`
	Rotation Vec3    `yaml:"rotation,flow"`
	Scale    float32 `yaml:"scale"`
}

// Heart is the sculpture at the end of the hallway with its caption.
type Heart struct {
	Position   Vec3    `yaml:"position,flow"`
	Scale      float32 `yaml:"scale"`
	Color      string  `yaml:"color"`
	Text       string  `yaml:"text"`
	TextSize   float32 `yaml:"text_size"`
	TextColor  string  `yaml:"text_color"`
	TextOffset Vec3    `yaml:"text_offset,flow"`
}

// Table is the display table with the cake and its small pictures.
type Table struct {
	Position   Vec3    `yaml:"position,flow"`
	Size       Vec3    `yaml:"size,flow"`
	Color      string  `yaml:"color"`
	FrameColor string  `yaml:"frame_color"`
	Frames     []Frame `yaml:"frames"`
	Cake       Cake    `yaml:"cake"`
}

// Cake sits on the table, relative to the table position.
type Cake struct {
	Position Vec3    `yaml:"position,flow"`
	Radius   float32 `yaml:"radius"`
	Height   float32 `yaml:"height"`
	Color    string  `yaml:"color"`
	Texture  string  `yaml:"texture"`
	Tiling   Vec2    `yaml:"tiling,flow"`
	Candles  Candles `yaml:"candles"`
	Light    Light   `yaml:"light"` // position relative to the cake
}

// Candles spell Digits on top of the cake.
type Candles struct {
	Digits      string  `yaml:"digits"`
	Spacing     float32 `yaml:"spacing"`
	DigitOffset float32 `yaml:"digit_offset"`
	Radius      float32 `yaml:"radius"`
	Height      float32 `yaml:"height"`
	Color       string  `yaml:"color"`
	FlameRadius float32 `yaml:"flame_radius"`
	FlameColor  string  `yaml:"flame_color"`
}

// Card is the clickable birthday card on the table, relative to the table position.
type Card struct {
	Position   Vec3    `yaml:"position,flow"`
	RotationY  float32 `yaml:"rotation_y"`
	Size       Vec3    `yaml:"size,flow"`
	Color      string  `yaml:"color"`
	HoverColor string  `yaml:"hover_color"`
	CoverColor string  `yaml:"cover_color"`
	CoverTilt  float32 `yaml:"cover_tilt"`
	Label      string  `yaml:"label"`
	LabelSize  float32 `yaml:"label_size"`
	LabelColor string  `yaml:"label_color"`
}

// Overlay is the 2D text: menu, instructions, close hint and the opened card.
type Overlay struct {
	Button       string `yaml:"button"`
	Instructions string `yaml:"instructions"`
	Hint         string `yaml:"hint"`
	CardImage    string `yaml:"card_image"`
	CardText     string `yaml:"card_text"`
}

var hallwayImages = []string{
	"images/IMG_1055.jpeg",
	"images/IMG_1179.jpeg",
	"images/IMG_1307.jpeg",
	"images/IMG_2067.JPG",
	"images/2787dd72-3888-4918-9dab-8c7ba6f0b2ae.jpg",
	"images/IMG_0461.jpeg",
	"images/IMG_0612.jpeg",
	"images/IMG_5511.jpeg",
	"images/IMG_7607.JPG",
	"images/IMG_7985.JPG",
}

var tableImages = []string{
	"images/0F8F745F-ED6D-4C6A-9BFC-F28E331D4328.jpg",
	"images/7c8ed0cf-8cbb-4011-8c9a-11c2390f850e.jpg",
	"images/85F3CF67-AE0B-49FE-9D37-E7DB54EAD5A6.jpg",
	"images/C18C547B-A36D-4902-869A-9DD9F722E271.jpg",
}

// Default returns the museum as shipped.
func Default() Layout {
	const (
		length = 30
		width  = 6
		height = 5
		startZ = 2
	)
	return Layout{
		Title:      "The Love Museum",
		Background: "#000000",
		Floor:      Floor{Size: Vec2{10, 10}, Color: "#222"},
		Backdrop: Backdrop{
			Texture:  "images/background.png",
			Radius:   12,
			Height:   8,
			Position: Vec3{0, 2.5, 0},
			Rotation: Vec3{0, 1.6, 0.1},
		},
		Lights: []Light{
			{Position: Vec3{0, 5, 0}, Color: "white", Intensity: 1},
			{Position: Vec3{0, 3, 2}, Color: "white", Intensity: 0.5},
		},
		Hallway: Hallway{
			Length:       length,
			Width:        width,
			Height:       height,
			StartZ:       startZ,
			FloorTexture: "images/floor_decoration.png",
			FloorTiling:  Vec2{3, 15},
			WallTexture:  "images/wall_decoration.png",
			WallTiling:   Vec2{4, 3},
			WallColor:    "#F5F5DC",
			WallOpacity:  0.6,
			CeilingColor: "#DAA520",
			FrameColor:   "#DAA520",
			Frames:       wallFrames(hallwayImages, width, startZ),
			Heart: Heart{
				Position:   Vec3{0, 1.5, startZ + length - 2},
				Scale:      1.6,
				Color:      "red",
				Text:       "I LOVE YOU",
				TextSize:   0.5,
				TextColor:  "white",
				TextOffset: Vec3{0, 0.8, -0.5},
			},
		},
		Table: Table{
			Size:       Vec3{3, 1, 2},
			Color:      "#6B3410",
			FrameColor: "#DAA520",
			Frames: []Frame{
				{Image: tableImages[0], Position: Vec3{-1.2, 1.4, 0.8}, Rotation: Vec3{0, math32.Pi / 4, 0}, Scale: 0.5},
				{Image: tableImages[1], Position: Vec3{1.2, 1.4, 0.8}, Rotation: Vec3{0, -math32.Pi / 4, 0}, Scale: 0.5},
				{Image: tableImages[2], Position: Vec3{-1.2, 1.4, -0.8}, Rotation: Vec3{0, math32.Pi / 4, 0}, Scale: 0.5},
				{Image: tableImages[3], Position: Vec3{1.2, 1.4, -0.8}, Rotation: Vec3{0, -math32.Pi / 4, 0}, Scale: 0.5},
			},
			Cake: Cake{
				Position: Vec3{0, 1.15, 0},
				Radius:   0.4,
				Height:   0.3,
				Color:    "#FFC0CB",
				Texture:  "images/cake_decoration.png",
				Tiling:   Vec2{8, 1},
				Candles: Candles{
					Digits:      "23",
					Spacing:     0.08,
					DigitOffset: 0.15,
					Radius:      0.01,
					Height:      0.2,
					Color:       "white",
					FlameRadius: 0.02,
					FlameColor:  "orange",
				},
				Light: Light{Position: Vec3{0, 0.5, 0}, Color: "orange", Intensity: 1, Range: 2},
			},
		},
		Card: Card{
			Position:   Vec3{0.3, 1.02, 0.5},
			RotationY:  -0.2,
			Size:       Vec3{0.3, 0.01, 0.2},
			Color:      "white",
			HoverColor: "yellow",
			CoverColor: "#ffdddd",
			CoverTilt:  0.2,
			Label:      "Open Me",
			LabelSize:  0.05,
			LabelColor: "red",
		},
		Overlay: Overlay{
			Button:       "Play with Love",
			Instructions: "Click to start. WASD to move. Mouse to look.",
			Hint:         "Press F to close",
			CardImage:    "images/card_background.jpeg",
			CardText:     "Happy Birthday!\n\nThis is a test text.\n\nI hope you have a wonderful day!",
		},
	}
}

// wallFrames hangs the first half of images on the left wall and the rest on the right,
// every five units from startZ+5, facing the middle of the hallway.
func wallFrames(images []string, width, startZ float32) []Frame {
	half := (len(images) + 1) / 2
	frames := make([]Frame, 0, len(images))
	for i, img := range images {
		x, rot, slot := -width/2+0.15, math32.Pi/2, i
		if i >= half {
			x, rot, slot = width/2-0.15, -math32.Pi/2, i-half
		}
		frames = append(frames, Frame{
			Image:    img,
			Position: Vec3{x, 2.5, startZ + 5*float32(slot+1)},
			Rotation: Vec3{0, float32(rot), 0},
			Scale:    1.8,
		})
	}
	return frames
}

// Textures lists every image the layout references, in first-use order, without duplicates.
func (l Layout) Textures() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	add(l.Backdrop.Texture)
	add(l.Hallway.FloorTexture)
	add(l.Hallway.WallTexture)
	for _, f := range l.Hallway.Frames {
		add(f.Image)
	}
	add(l.Table.Cake.Texture)
	for _, f := range l.Table.Frames {
		add(f.Image)
	}
	add(l.Overlay.CardImage)
	return out
}
