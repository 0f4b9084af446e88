// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package solar

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/samber/lo"

	"github.com/gviegas/orrery/linear"
	"github.com/gviegas/orrery/node"
)

// DefaultSegments is the number of points OrbitRing
// generates when given a non-positive count.
const DefaultSegments = 360

// OrbitRing returns points of the unit circle in the XZ
// plane, starting at (1, 0, 0) and evenly spaced by
// 2π/segments radians.
func OrbitRing(segments int) []linear.V3 {
	if segments <= 0 {
		segments = DefaultSegments
	}
	step := 2 * math32.Pi / float32(segments)
	return lo.Times(segments, func(i int) linear.V3 {
		s, c := math32.Sincos(float32(i) * step)
		return linear.V3{c, 0, s}
	})
}

// OrbitMatrix returns the transform that places a unit
// OrbitRing around the origin of geom's orbit.
// It is the world transform of the holder's parent scaled
// by the geometry's radius. The root is used when the
// holder has no parent.
// It returns false if geom is not a geometry node with a
// holder.
func OrbitMatrix(geom *node.Node) (m linear.M4, ok bool) {
	g, isGeom := geom.Geometry()
	holder := geom.Parent()
	if !isGeom || holder == nil {
		return
	}
	var origin linear.M4
	if p := holder.Parent(); p != nil {
		origin = p.World()
	} else {
		origin.I()
	}
	var s linear.M4
	r := g.Radius()
	s.Scale(r, r, r)
	m.Mul(&origin, &s)
	return m, true
}

// Star is a point of the background star field.
type Star struct {
	Position linear.V3
	Color    linear.V3
}

// Stars returns n stars placed in the cube of half-side
// radius centered at the origin, with RGB colors in
// [0, 1).
// The same seed always produces the same stars.
func Stars(n int, seed uint64, radius float32) []Star {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	coord := func() float32 { return (rng.Float32()*2 - 1) * radius }
	return lo.Times(n, func(int) Star {
		var s Star
		s.Position = linear.V3{coord(), coord(), coord()}
		s.Color = linear.V3{rng.Float32(), rng.Float32(), rng.Float32()}
		return s
	})
}
