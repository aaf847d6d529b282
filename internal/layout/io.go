package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a layout file. Fields the file leaves out keep their Default() values, so a file
// may override only the parts it cares about (for example just the hallway pictures).
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Layout, error) {
	l := Default()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Save writes the layout as YAML, creating the directory if needed.
func Save(path string, l Layout) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(&l)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every bad colour and non-positive dimension.
func (l Layout) Validate() error {
	var errs []error
	checkColor := func(field, s string) {
		if s == "" {
			return
		}
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	positive := func(field string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", field, v))
		}
	}

	checkColor("background", l.Background)
	checkColor("floor.color", l.Floor.Color)
	for i, li := range l.Lights {
		checkColor(fmt.Sprintf("lights[%d].color", i), li.Color)
	}
	h := l.Hallway
	positive("hallway.length", h.Length)
	positive("hallway.width", h.Width)
	positive("hallway.height", h.Height)
	checkColor("hallway.wall_color", h.WallColor)
	checkColor("hallway.ceiling_color", h.CeilingColor)
	checkColor("hallway.frame_color", h.FrameColor)
	checkColor("hallway.heart.color", h.Heart.Color)
	checkColor("hallway.heart.text_color", h.Heart.TextColor)
	if h.WallOpacity < 0 || h.WallOpacity > 1 {
		errs = append(errs, fmt.Errorf("hallway.wall_opacity must be in [0, 1], got %g", h.WallOpacity))
	}
	for i, f := range h.Frames {
		if f.Image == "" {
			errs = append(errs, fmt.Errorf("hallway.frames[%d]: image is required", i))
		}
	}

	t := l.Table
	checkColor("table.color", t.Color)
	checkColor("table.frame_color", t.FrameColor)
	for i, f := range t.Frames {
		if f.Image == "" {
			errs = append(errs, fmt.Errorf("table.frames[%d]: image is required", i))
		}
	}
	positive("table.cake.radius", t.Cake.Radius)
	positive("table.cake.height", t.Cake.Height)
	checkColor("table.cake.color", t.Cake.Color)
	checkColor("table.cake.candles.color", t.Cake.Candles.Color)
	checkColor("table.cake.candles.flame_color", t.Cake.Candles.FlameColor)
	checkColor("table.cake.light.color", t.Cake.Light.Color)

	c := l.Card
	positive("card.size.x", c.Size[0])
	positive("card.size.y", c.Size[1])
	positive("card.size.z", c.Size[2])
	checkColor("card.color", c.Color)
	checkColor("card.hover_color", c.HoverColor)
	checkColor("card.cover_color", c.CoverColor)
	checkColor("card.label_color", c.LabelColor)
	return errors.Join(errs...)
}
