// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package draw derives per-frame render data from a
// scene graph.
// It reads the graph's indices and world transforms and
// never modifies the graph.
package draw

import (
	"github.com/samber/lo"

	"github.com/gviegas/orrery"
	"github.com/gviegas/orrery/linear"
	"github.com/gviegas/orrery/node"
)

// Drawable describes how to render a geometry node.
// Unit is -1 when the geometry has no texture unit.
type Drawable struct {
	Node    *node.Node
	World   linear.M4
	Normal  linear.M3
	Color   linear.V3
	Texture string
	Unit    int
	Handle  any
}

// Collect returns a Drawable for every registered
// geometry of g, in registration order.
// view is the view matrix of the current camera, as
// returned by Camera. The normal matrix is the upper-left
// 3x3 of the inverse transpose of view ⋅ World, so
// normals end up in view space.
func Collect(g *orrery.Graph, view *linear.M4) []Drawable {
	return lo.FilterMap(g.Geometries(), func(n *node.Node, _ int) (Drawable, bool) {
		geom, ok := n.Geometry()
		if !ok {
			return Drawable{}, false
		}
		d := Drawable{
			Node:   n,
			World:  n.World(),
			Color:  geom.Color(),
			Unit:   -1,
			Handle: geom.Handle(),
		}
		d.Texture, _ = geom.Texture()
		if u, ok := geom.TextureUnit(); ok {
			d.Unit = u
		}
		normal(&d.Normal, view, &d.World)
		return d, true
	})
}

// normal sets m to contain the upper-left 3x3 of the
// inverse transpose of view ⋅ world.
func normal(m *linear.M3, view, world *linear.M4) {
	var x linear.M4
	x.Mul(view, world)
	x.Invert(&x)
	x.Transpose(&x)
	m.FromM4(&x)
}

// PointLight describes a light source at a position in
// world space.
type PointLight struct {
	Node      *node.Node
	Position  linear.V3
	Intensity float32
	Color     linear.V3
}

// Lights returns a PointLight for every registered light
// of g, in registration order.
func Lights(g *orrery.Graph) []PointLight {
	return lo.FilterMap(g.Lights(), func(n *node.Node, _ int) (PointLight, bool) {
		l, ok := n.Light()
		if !ok {
			return PointLight{}, false
		}
		w := n.World()
		return PointLight{
			Node:      n,
			Position:  w.Translation(),
			Intensity: l.Intensity(),
			Color:     l.Color(),
		}, true
	})
}

// Camera returns the view and projection matrices of the
// enabled camera of g.
// The view matrix is the inverse of the camera's world
// transform.
// It returns false if g has no enabled camera.
func Camera(g *orrery.Graph) (view, proj linear.M4, ok bool) {
	n, ok := g.EnabledCamera()
	if !ok {
		return
	}
	c, _ := n.Camera()
	w := n.World()
	view.Invert(&w)
	proj = c.Projection()
	return
}
