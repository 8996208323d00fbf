// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads and saves outline layer collections as TOML.
//
// A collection file is a sequence of [[layer]] tables:
//
//	[[layer]]
//	name = "enemies"
//	color = "red"
//	width = 6
//	intensity = 2.0
//	mode = "blurred"
//
//	[[layer]]
//	name = "pickups"
//	color = "#00ff88"
//	width = 3
//
// Colors accept SVG 1.1 color names and #rrggbb or #rrggbbaa hex.
// Omitted fields keep the defaults of a freshly created layer.
package config

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"github.com/gogpu/outline"
)

// File is the on-disk shape of a layer collection.
type File struct {
	Layers []LayerConfig `toml:"layer"`
}

// LayerConfig is one [[layer]] table.
//
// Pointer fields distinguish "absent" from a zero value: an absent field
// leaves the corresponding layer default untouched.
type LayerConfig struct {
	Name      string   `toml:"name,omitempty"`
	Enabled   *bool    `toml:"enabled,omitempty"`
	Color     string   `toml:"color,omitempty"`
	Width     *int     `toml:"width,omitempty"`
	Intensity *float64 `toml:"intensity,omitempty"`
	Mode      string   `toml:"mode,omitempty"`
	Priority  int      `toml:"priority,omitempty"`
}

// Load reads a TOML layer collection from r and builds the layers.
// The returned collection owns every layer it lists.
func Load(r io.Reader) (*outline.LayerCollection, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return f.Build()
}

// LoadFile reads a TOML layer collection from the named file.
func LoadFile(path string) (*outline.LayerCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f.Build()
}

// Build constructs a layer collection from the decoded file.
// Each layer is created with its defaults, adjusted by the fields the
// file sets, and added to the collection in file order.
func (f *File) Build() (*outline.LayerCollection, error) {
	c := outline.NewLayerCollection()
	for i, lc := range f.Layers {
		layer, err := lc.build()
		if err != nil {
			return nil, fmt.Errorf("config: layer %d: %w", i, err)
		}
		if err := c.Add(layer); err != nil {
			return nil, fmt.Errorf("config: layer %d: %w", i, err)
		}
	}
	return c, nil
}

func (lc *LayerConfig) build() (*outline.Layer, error) {
	layer := outline.NewLayer(lc.Name)
	if lc.Enabled != nil {
		layer.SetEnabled(*lc.Enabled)
	}
	layer.SetPriority(lc.Priority)

	style := layer.Style
	if lc.Color != "" {
		col, err := ParseColor(lc.Color)
		if err != nil {
			return nil, err
		}
		style.Color = col
	}
	if lc.Width != nil {
		style.Width = *lc.Width
	}
	if lc.Intensity != nil {
		style.Intensity = float32(*lc.Intensity)
	}
	switch strings.ToLower(lc.Mode) {
	case "":
	case "solid":
		style.Mode = outline.ModeSolid
	case "blurred":
		style.Mode = outline.ModeBlurred
	default:
		return nil, fmt.Errorf("unknown mode %q", lc.Mode)
	}
	layer.SetStyle(style.Clamped())
	return layer, nil
}

// Save writes the collection's layers to w as TOML.
func Save(w io.Writer, c *outline.LayerCollection) error {
	if c == nil {
		return outline.ErrNilLayers
	}
	f := Snapshot(c)
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SaveFile writes the collection's layers to the named file.
func SaveFile(path string, c *outline.LayerCollection) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := Save(file, c); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Snapshot captures the collection's layers as a File.
// Styles are written explicitly so a round trip reproduces the layers
// regardless of future default changes.
func Snapshot(c *outline.LayerCollection) *File {
	layers := c.Layers()
	f := &File{Layers: make([]LayerConfig, 0, len(layers))}
	for _, l := range layers {
		enabled := l.Enabled()
		width := l.Style.Width
		intensity := float64(l.Style.Intensity)
		f.Layers = append(f.Layers, LayerConfig{
			Name:      l.Name(),
			Enabled:   &enabled,
			Color:     FormatColor(l.Style.Color),
			Width:     &width,
			Intensity: &intensity,
			Mode:      strings.ToLower(l.Style.Mode.String()),
			Priority:  l.Priority(),
		})
	}
	return f
}

// ParseColor parses an SVG 1.1 color name or #rrggbb / #rrggbbaa hex.
func ParseColor(s string) (color.RGBA, error) {
	if name := strings.ToLower(s); !strings.HasPrefix(name, "#") {
		if col, ok := colornames.Map[name]; ok {
			return col, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	var c color.RGBA
	c.A = 0xff
	switch len(hex) {
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// FormatColor renders a color as the shortest form that reads it back:
// a color name when one matches exactly, otherwise hex.
func FormatColor(c color.RGBA) string {
	for _, name := range colornames.Names {
		if colornames.Map[name] == c {
			return name
		}
	}
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
