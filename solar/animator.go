// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package solar

import (
	"github.com/gviegas/orrery/linear"
	"github.com/gviegas/orrery/node"
)

// orbit is what an Animator tracks per body.
type orbit struct {
	holder   *node.Node
	geom     *node.Node
	size     float32
	speed    float32
	distance float32
}

// Animator moves bodies along their orbits.
// Changes made by a Step are committed as a single
// node.Batch, so each sub-graph is recomputed once.
// The zero value is ready for use.
type Animator struct {
	orbits []orbit
	batch  node.Batch
	spin   bool
}

// Track adds geom to the set of animated bodies.
// geom must be a geometry node whose parent is its holder.
// Size, speed and distance are read from the payload.
func (a *Animator) Track(geom *node.Node) error {
	if geom == nil || geom.Parent() == nil {
		return ErrNotOrbiting
	}
	g, ok := geom.Geometry()
	if !ok {
		return ErrNotOrbiting
	}
	a.orbits = append(a.orbits, orbit{
		holder:   geom.Parent(),
		geom:     geom,
		size:     g.Size(),
		speed:    g.Speed(),
		distance: g.Distance(),
	})
	return nil
}

// Len returns the number of tracked bodies.
func (a *Animator) Len() int { return len(a.orbits) }

// SetSpin sets whether Step also rotates each geometry
// around its own Y axis. It is off by default.
// Turning it off leaves the last spin in place.
func (a *Animator) SetSpin(on bool) { a.spin = on }

// Step places every tracked body at time t (in seconds).
// The holder of each body is set to
//
//	RotateY(t⋅speed) ⋅ Translate(0, 0, distance)
//
// in tracking order.
func (a *Animator) Step(t float32) {
	var m linear.M4
	for i := range a.orbits {
		o := &a.orbits[i]
		orbitLocal(&m, t*o.speed, o.distance)
		a.batch.Set(o.holder, &m)
		if a.spin {
			spinLocal(&m, t*o.speed, o.size)
			a.batch.Set(o.geom, &m)
		}
	}
	a.batch.Commit()
}

// orbitLocal sets m to contain RotateY(angle) ⋅
// Translate(0, 0, distance).
func orbitLocal(m *linear.M4, angle, distance float32) {
	var r, t linear.M4
	r.Rotate(angle, &linear.V3{0, 1, 0})
	t.Translate(0, 0, distance)
	m.Mul(&r, &t)
}

// spinLocal sets m to contain Scale(size) ⋅ RotateY(angle).
func spinLocal(m *linear.M4, angle, size float32) {
	var s, r linear.M4
	s.Scale(size, size, size)
	r.Rotate(angle, &linear.V3{0, 1, 0})
	m.Mul(&s, &r)
}
