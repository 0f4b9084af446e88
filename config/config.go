// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package config describes solar systems to be built by
// package solar. Descriptions can be decoded from TOML or
// YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const prefix = "config: "

func newErr(reason string) error { return errors.New(prefix + reason) }

// Format identifies an encoding.
type Format int

// Supported formats.
const (
	TOML Format = iota
	YAML
)

// System describes a solar system.
type System struct {
	Name   string  `toml:"name" yaml:"name"`
	Bodies []Body  `toml:"bodies" yaml:"bodies"`
	Lights []Light `toml:"lights" yaml:"lights"`
	Camera Camera  `toml:"camera" yaml:"camera"`
	Stars  Stars   `toml:"stars" yaml:"stars"`
}

// Body describes a celestial body.
// Parent names a body declared earlier in System.Bodies,
// or is empty for bodies orbiting the origin.
type Body struct {
	Name     string     `toml:"name" yaml:"name"`
	Parent   string     `toml:"parent,omitempty" yaml:"parent,omitempty"`
	Size     float32    `toml:"size" yaml:"size"`
	Speed    float32    `toml:"speed" yaml:"speed"`
	Distance float32    `toml:"distance" yaml:"distance"`
	Color    [3]float32 `toml:"color" yaml:"color"`
	Texture  string     `toml:"texture,omitempty" yaml:"texture,omitempty"`
}

// Light describes a point light.
// Parent names the body the light is attached to, or is
// empty for lights placed at the origin.
type Light struct {
	Name      string     `toml:"name" yaml:"name"`
	Parent    string     `toml:"parent,omitempty" yaml:"parent,omitempty"`
	Intensity float32    `toml:"intensity" yaml:"intensity"`
	Color     [3]float32 `toml:"color" yaml:"color"`
}

// Camera describes the viewer.
type Camera struct {
	Perspective bool       `toml:"perspective" yaml:"perspective"`
	Fovy        float32    `toml:"fovy" yaml:"fovy"` // Degrees.
	Aspect      float32    `toml:"aspect" yaml:"aspect"`
	Near        float32    `toml:"near" yaml:"near"`
	Far         float32    `toml:"far" yaml:"far"`
	Position    [3]float32 `toml:"position" yaml:"position"`
}

// Stars describes the background star field.
type Stars struct {
	Count  int     `toml:"count" yaml:"count"`
	Seed   uint64  `toml:"seed" yaml:"seed"`
	Radius float32 `toml:"radius" yaml:"radius"`
}

// Load reads the System stored in the file named by path.
// The format is chosen by extension: ".toml", ".yaml" or
// ".yml".
func Load(path string) (*System, error) {
	var f Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		f = TOML
	case ".yaml", ".yml":
		f = YAML
	default:
		return nil, newErr("unknown file extension: " + path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(b), f)
}

// Decode reads a System from r and validates it.
func Decode(r io.Reader, f Format) (*System, error) {
	var sys System
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&sys)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&sys)
	default:
		return nil, newErr("undefined Format constant")
	}
	if err != nil {
		return nil, fmt.Errorf(prefix+"decode: %w", err)
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return &sys, nil
}

// Encode writes s to w.
func (s *System) Encode(w io.Writer, f Format) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return newErr("undefined Format constant")
}

// Validate checks that s describes a buildable system.
func (s *System) Validate() error {
	if s.Name == "" {
		return newErr("System.Name is empty")
	}
	seen := make(map[string]bool, len(s.Bodies))
	for i := range s.Bodies {
		b := &s.Bodies[i]
		switch {
		case b.Name == "":
			return newErr(fmt.Sprintf("Bodies[%d].Name is empty", i))
		case seen[b.Name]:
			return newErr("duplicate body name: " + b.Name)
		case b.Parent != "" && !seen[b.Parent]:
			return newErr("body " + b.Name + " has undeclared parent " + b.Parent)
		case b.Size < 0:
			return newErr("body " + b.Name + " has negative size")
		case b.Distance < 0:
			return newErr("body " + b.Name + " has negative distance")
		}
		seen[b.Name] = true
	}
	for i := range s.Lights {
		l := &s.Lights[i]
		switch {
		case l.Name == "":
			return newErr(fmt.Sprintf("Lights[%d].Name is empty", i))
		case l.Parent != "" && !seen[l.Parent]:
			return newErr("light " + l.Name + " has undeclared parent " + l.Parent)
		case l.Intensity < 0:
			return newErr("light " + l.Name + " has negative intensity")
		}
	}
	c := &s.Camera
	switch {
	case c.Near <= 0:
		return newErr("Camera.Near must be greater than zero")
	case c.Far <= c.Near:
		return newErr("Camera.Far must be greater than Camera.Near")
	case c.Perspective && (c.Fovy <= 0 || c.Fovy >= 180):
		return newErr("Camera.Fovy out of range")
	case c.Aspect <= 0:
		return newErr("Camera.Aspect must be greater than zero")
	}
	if s.Stars.Count < 0 {
		return newErr("Stars.Count is negative")
	}
	return nil
}

// Default returns the classic system: the sun, nine
// planets and the moon.
func Default() *System {
	white := [3]float32{1, 1, 1}
	body := func(name, parent string, size, speed, distance float32, color [3]float32) Body {
		return Body{
			Name:     name,
			Parent:   parent,
			Size:     size,
			Speed:    speed,
			Distance: distance,
			Color:    color,
		}
	}
	return &System{
		Name: "Solar System",
		Bodies: []Body{
			body("sun", "", 0.5, 0, 0, [3]float32{1, 0.8, 0.2}),
			body("mercury", "", 0.09, 0.5, 1, [3]float32{0.6, 0.6, 0.6}),
			body("venus", "", 0.2, 0.4, 1.5, [3]float32{0.9, 0.7, 0.4}),
			body("earth", "", 0.2, 0.3, 2.5, [3]float32{0.2, 0.4, 0.9}),
			body("mars", "", 0.1, 0.2, 3.5, [3]float32{0.8, 0.3, 0.1}),
			body("jupiter", "", 0.4, 0.09, 5, [3]float32{0.8, 0.6, 0.4}),
			body("saturn", "", 0.4, 0.1, 7, [3]float32{0.9, 0.8, 0.5}),
			body("uranus", "", 0.3, 0.05, 9, [3]float32{0.5, 0.8, 0.9}),
			body("neptune", "", 0.3, 0.04, 10, [3]float32{0.2, 0.3, 0.9}),
			body("pluto", "", 0.04, 0.06, 10.5, [3]float32{0.7, 0.6, 0.5}),
			body("moon", "earth", 0.05, 1.3, 0.6, white),
		},
		Lights: []Light{
			{Name: "sun light", Parent: "sun", Intensity: 1, Color: white},
		},
		Camera: Camera{
			Perspective: true,
			Fovy:        60,
			Aspect:      16.0 / 9,
			Near:        0.1,
			Far:         100,
			Position:    [3]float32{0, 0, 4},
		},
		Stars: Stars{Count: 5000, Seed: 1, Radius: 50},
	}
}
