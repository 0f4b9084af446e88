// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package solar builds and animates solar system scene
// graphs from config.System descriptions.
package solar

import (
	"errors"
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/gviegas/orrery"
	"github.com/gviegas/orrery/config"
	"github.com/gviegas/orrery/internal/bitvec"
	"github.com/gviegas/orrery/linear"
	"github.com/gviegas/orrery/node"
)

const prefix = "solar: "

var (
	// ErrNoUnits is returned when more bodies are textured
	// than there are texture units.
	ErrNoUnits = errors.New(prefix + "no texture units available")

	// ErrNotOrbiting is returned by Animator.Track for nodes
	// that are not geometries placed under a holder.
	ErrNotOrbiting = errors.New(prefix + "node is not an orbiting geometry")
)

// MaxUnits is the number of texture units available
// to a single system.
const MaxUnits = 16

// HolderSuffix is appended to a body's name to form the
// name of its holder node.
const HolderSuffix = " holder"

// CameraName is the name of the camera node created by
// Builder.Build.
const CameraName = "camera"

// Scene is the result of building a system.
type Scene struct {
	Graph  *orrery.Graph
	Camera *node.Node
	Anim   *Animator
	Stars  []Star
	units  *unitPool
}

// SetTexture sets the texture reference of geom, which
// must be a geometry node.
// A texture unit is allocated the first time geom is given
// a texture, and released when ref is empty. It fails with
// ErrNoUnits if every unit is in use.
func (s *Scene) SetTexture(geom *node.Node, ref string) error {
	g, ok := geom.Geometry()
	if !ok {
		return orrery.ErrKind
	}
	u, hasUnit := g.TextureUnit()
	if ref == "" {
		if hasUnit {
			s.units.free(u)
			g.ClearTextureUnit()
		}
		g.SetTexture("")
		return nil
	}
	if !hasUnit {
		var err error
		if u, err = s.units.alloc(); err != nil {
			return err
		}
		g.SetTextureUnit(u)
	}
	g.SetTexture(ref)
	return nil
}

// FreeUnits returns the number of texture units not in use.
func (s *Scene) FreeUnits() int { return s.units.bv.Rem() }

// Builder creates scene graphs from system descriptions.
type Builder struct {
	log *slog.Logger
}

// NewBuilder creates a new Builder.
// If log is nil, slog.Default is used.
func NewBuilder(log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{log: log}
}

// unitPool allocates texture units.
type unitPool struct {
	bv bitvec.V[uint16]
}

func newUnitPool() *unitPool {
	p := new(unitPool)
	p.bv.Grow(MaxUnits / 16)
	return p
}

func (p *unitPool) alloc() (int, error) {
	i, ok := p.bv.Search()
	if !ok {
		return -1, ErrNoUnits
	}
	p.bv.Set(i)
	return i, nil
}

func (p *unitPool) free(i int) {
	if i >= 0 && i < p.bv.Len() && p.bv.IsSet(i) {
		p.bv.Unset(i)
	}
}

// Build creates the scene described by sys.
//
// Every body is represented by two nodes: a holder named
// after the body plus HolderSuffix, whose local transform
// places the orbit, and a geometry node under it whose
// local transform scales the model. A body's holder is
// created under the holder of its parent body, or under
// the root. Geometries are registered in declaration order.
// Lights are created under the holder of the body they
// name, and a single enabled camera is created under the
// root.
func (b *Builder) Build(sys *config.System) (*Scene, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	g := orrery.New(sys.Name, nil)
	anim := new(Animator)
	holders := make(map[string]*node.Node, len(sys.Bodies))
	units := newUnitPool()

	for i := range sys.Bodies {
		bd := &sys.Bodies[i]
		parent := g.Root()
		if bd.Parent != "" {
			parent = holders[bd.Parent]
		}
		holder, err := node.New(parent, bd.Name+HolderSuffix)
		if err != nil {
			return nil, err
		}
		var m linear.M4
		orbitLocal(&m, 0, bd.Distance)
		holder.SetLocal(&m)

		geom, err := node.NewGeometry(holder, bd.Name, &node.GeometryDesc{
			Size:     bd.Size,
			Speed:    bd.Speed,
			Distance: bd.Distance,
			Color:    linear.V3(bd.Color),
			Texture:  bd.Texture,
		})
		if err != nil {
			return nil, err
		}
		m.Scale(bd.Size, bd.Size, bd.Size)
		geom.SetLocal(&m)

		gm, _ := geom.Geometry()
		gm.SetDistanceToOrigin(&linear.V3{bd.Distance})
		if bd.Texture != "" {
			u, err := units.alloc()
			if err != nil {
				return nil, err
			}
			gm.SetTextureUnit(u)
		}
		if err := g.RegisterGeometry(geom); err != nil {
			return nil, err
		}
		if err := anim.Track(geom); err != nil {
			return nil, err
		}
		holders[bd.Name] = holder

		b.log.Debug("body created",
			"name", bd.Name,
			"path", geom.Path(),
			"depth", geom.Depth(),
			"distance", bd.Distance,
			"speed", bd.Speed)
	}

	for i := range sys.Lights {
		l := &sys.Lights[i]
		parent := g.Root()
		if l.Parent != "" {
			parent = holders[l.Parent]
		}
		color := linear.V3(l.Color)
		n, err := node.NewLight(parent, l.Name, l.Intensity, &color)
		if err != nil {
			return nil, err
		}
		if err := g.RegisterLight(n); err != nil {
			return nil, err
		}
		b.log.Debug("light created", "name", l.Name, "path", n.Path())
	}

	var proj linear.M4
	projection(&proj, &sys.Camera)
	cam, err := node.NewCamera(g.Root(), CameraName, sys.Camera.Perspective, true, &proj)
	if err != nil {
		return nil, err
	}
	var m linear.M4
	p := sys.Camera.Position
	m.Translate(p[0], p[1], p[2])
	cam.SetLocal(&m)

	s := &Scene{
		Graph:  g,
		Camera: cam,
		Anim:   anim,
		Stars:  Stars(sys.Stars.Count, sys.Stars.Seed, sys.Stars.Radius),
		units:  units,
	}
	b.log.Info("system built",
		"name", g.Name(),
		"nodes", g.Len(),
		"geometries", len(g.Geometries()),
		"lights", len(g.Lights()),
		"stars", len(s.Stars))
	return s, nil
}

// projection sets m to contain the projection described
// by c. Orthographic projections span [-Aspect, Aspect]
// horizontally and [-1, 1] vertically.
func projection(m *linear.M4, c *config.Camera) {
	if c.Perspective {
		m.Perspective(c.Fovy*math32.Pi/180, c.Aspect, c.Near, c.Far)
	} else {
		m.Ortho(-c.Aspect, c.Aspect, -1, 1, c.Near, c.Far)
	}
}
