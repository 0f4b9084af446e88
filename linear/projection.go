// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/go-gl/mathgl/mgl32"
)

// fromMat4 sets m to contain n.
// Both types are column-major.
func (m *M4) fromMat4(n *mgl32.Mat4) {
	for i := range n {
		m[i/4][i%4] = n[i]
	}
}

// Perspective sets m to contain a perspective projection.
// fovy is the vertical field of view in radians.
func (m *M4) Perspective(fovy, aspect, near, far float32) {
	p := mgl32.Perspective(fovy, aspect, near, far)
	m.fromMat4(&p)
}

// Ortho sets m to contain an orthographic projection.
func (m *M4) Ortho(left, right, bottom, top, near, far float32) {
	p := mgl32.Ortho(left, right, bottom, top, near, far)
	m.fromMat4(&p)
}

// LookAt sets m to contain a view matrix placed at eye,
// looking at center.
func (m *M4) LookAt(eye, center, up *V3) {
	p := mgl32.LookAtV(mgl32.Vec3(*eye), mgl32.Vec3(*center), mgl32.Vec3(*up))
	m.fromMat4(&p)
}
