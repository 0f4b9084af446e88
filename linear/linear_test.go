// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// approx compares m and n within a fixed tolerance.
func (m *M4) approx(n *M4) bool {
	for i := range m {
		for j := range m[i] {
			if d := m[i][j] - n[i][j]; d > 1e-5 || d < -1e-5 {
				return false
			}
		}
	}
	return true
}

// mat4 converts an mgl32.Mat4 into a M4.
func mat4(n mgl32.Mat4) (m M4) {
	m.fromMat4(&n)
	return
}

func TestV(t *testing.T) {
	var u V3
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u.Add(&v, &w); u != (V3{1, 1, 6}) {
		t.Fatalf("V3.Add\nhave %v\nwant [1 1 6]", u)
	}
	if u.Sub(&v, &w); u != (V3{1, 3, 2}) {
		t.Fatalf("V3.Sub\nhave %v\nwant [1 3 2]", u)
	}
	if u.Scale(-1, &v); u != (V3{-1, -2, -4}) {
		t.Fatalf("V3.Scale\nhave %v\nwant [-1 -2 -4]", u)
	}
	if d := v.Dot(&w); d != 6 {
		t.Fatalf("V3.Dot\nhave %v\nwant 6\n", d)
	}
	if l := v.Len(); l != float32(math.Sqrt(21)) {
		t.Fatalf("V3.Len\nhave %v\nwant %v\n", l, math.Sqrt(21))
	}

	v = V3{0, 0, -2}
	w = V3{0, 4, 0}

	if v.Norm(&v); v != (V3{0, 0, -1}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 0 -1]", v)
	}
	if w.Norm(&w); w != (V3{0, 1, 0}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 1 0]", w)
	}
	if u.Cross(&v, &w); u != (V3{1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [1 0 0]", u)
	}
	if v.Cross(&v, &w); v != (V3{1, 0, 0}) {
		t.Fatalf("V3.Cross (aliased)\nhave %v\nwant [1 0 0]", v)
	}

	m := M3{
		{2, 0, 1},
		{1, 3, 2},
		{4, 2, 3},
	}
	v = V3{-1, 0, 1}

	if u.Mul(&m, &v); u != (V3{2, 2, 2}) {
		t.Fatalf("V3.Mul\nhave %v\nwant [2 2 2]", u)
	}
	m.I()
	if u.Mul(&m, &v); u != v {
		t.Fatalf("V3.Mul\nhave %v\nwant %v", u, v)
	}

	x := V4{1, 2, 3, 1}
	if l := x.Len(); l != float32(math.Sqrt(15)) {
		t.Fatalf("V4.Len\nhave %v\nwant %v", l, math.Sqrt(15))
	}
	var n M4
	n.Translate(1, 1, 1)
	if x.Mul(&n, &x); x != (V4{2, 3, 4, 1}) {
		t.Fatalf("V4.Mul\nhave %v\nwant [2 3 4 1]", x)
	}
}

func TestM(t *testing.T) {
	var l M3
	m := M3{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}
	n := M3{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}

	if l.I(); l != (M3{{1}, {0, 1}, {0, 0, 1}}) {
		t.Fatalf("M3.I\nhave %v\nwant [%v %v %v]", l, V3{1}, V3{0, 1}, V3{0, 0, 1})
	}
	if l.Mul(&m, &n); l != (M3{m[1], m[2], m[0]}) {
		t.Fatalf("M3.Mul\nhave %v\nwant [%v %v %v]", l, m[1], m[2], m[0])
	}
	if l.Transpose(&m); l != (M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}) {
		t.Fatalf("M3.Transpose\nhave %v\nwant %v", l, M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	}
	if l.Invert(&n); l != (M3{n[1], n[2], n[0]}) {
		t.Fatalf("M3.Invert\nhave %v\nwant %v", l, M3{n[1], n[2], n[0]})
	}

	var k M4
	k.Translate(4, 5, 6)
	if l.FromM4(&k); l != (M3{{1}, {0, 1}, {0, 0, 1}}) {
		t.Fatalf("M3.FromM4\nhave %v\nwant identity", l)
	}
}

func TestM4(t *testing.T) {
	var x, y, z, id M4
	id.I()

	x.Translate(1, -2, 3)
	y.Scale(2, 2, 2)
	z.Mul(&x, &y)
	want := mat4(mgl32.Translate3D(1, -2, 3).Mul4(mgl32.Scale3D(2, 2, 2)))
	if z != want {
		t.Fatalf("M4.Mul\nhave %v\nwant %v", z, want)
	}

	// Aliasing the destination must not corrupt the result.
	x.Mul(&x, &y)
	if x != z {
		t.Fatalf("M4.Mul (aliased)\nhave %v\nwant %v", x, z)
	}

	z.Invert(&x)
	z.Mul(&x, &z)
	if !z.approx(&id) {
		t.Fatalf("M4.Invert\nhave %v\nwant %v", z, id)
	}
	z = x
	z.Invert(&z)
	want = mat4(mgl32.Translate3D(1, -2, 3).Mul4(mgl32.Scale3D(2, 2, 2)).Inv())
	if !z.approx(&want) {
		t.Fatalf("M4.Invert (aliased)\nhave %v\nwant %v", z, want)
	}

	z.Transpose(&x)
	if z[0][3] != 1 || z[1][3] != -2 || z[2][3] != 3 || z[3][3] != 1 {
		t.Fatalf("M4.Transpose\nhave %v", z)
	}
	if tr := x.Translation(); tr != (V3{1, -2, 3}) {
		t.Fatalf("M4.Translation\nhave %v\nwant [1 -2 3]", tr)
	}
}

func TestRotate(t *testing.T) {
	for _, x := range [...]struct {
		angle float32
		axis  V3
	}{
		{math.Pi / 2, V3{0, 1, 0}},
		{math.Pi / 3, V3{1, 0, 0}},
		{-math.Pi / 4, V3{0, 0, 2}},
		{1.25, V3{1, 1, 1}},
	} {
		var m M4
		m.Rotate(x.angle, &x.axis)
		ax := mgl32.Vec3(x.axis).Normalize()
		want := mat4(mgl32.HomogRotate3D(x.angle, ax))
		if !m.approx(&want) {
			t.Fatalf("M4.Rotate(%v, %v)\nhave %v\nwant %v", x.angle, x.axis, m, want)
		}
	}
}

func TestQ(t *testing.T) {
	var r Q
	q := Q{V: V3{1, 0, 0}, R: 3}
	p := Q{V: V3{0, 1, 0}, R: 3}

	if r.Mul(&q, &p); r.V != (V3{3, 3, 1}) || r.R != 9 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[3 3 1] 9}", r)
	}
	if r.Mul(&p, &q); r.V != (V3{3, 3, -1}) || r.R != 9 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[3 3 -1] 9}", r)
	}
	if q.Mul(&q, &q); q.V != (V3{6}) || q.R != 8 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[6 0 0] 8}", q)
	}
	if q.I(); q != (Q{R: 1}) {
		t.Fatalf("Q.I\nhave %v\nwant {[0 0 0] 1}", q)
	}
}

func TestTRS(t *testing.T) {
	var x, r, s M4
	var q Q

	x.Translate(-1, -2, -3)
	q.Rotate(0, &V3{1})
	r.RotateQ(&q)
	s.Scale(5, 5, 5)
	x.Mul(&x, &r)
	x.Mul(&x, &s)
	if x != (M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}}) {
		t.Fatalf("T*R*S\nhave %v\nwant %v", x, M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}})
	}
	v := V4{1, 1, 1, 1}
	v.Mul(&x, &v)
	if v != (V4{4, 3, 2, 1}) {
		t.Fatalf("TRS*v\nhave %v\nwant %v", v, V4{4, 3, 2, 1})
	}
}

func TestProjection(t *testing.T) {
	var m M4
	m.Perspective(math.Pi/4, 16.0/9, 0.1, 100)
	want := mat4(mgl32.Perspective(math.Pi/4, 16.0/9, 0.1, 100))
	if m != want {
		t.Fatalf("M4.Perspective\nhave %v\nwant %v", m, want)
	}
	if m[2][3] != -1 || m[3][3] != 0 {
		t.Fatalf("M4.Perspective: w row\nhave %v %v\nwant -1 0", m[2][3], m[3][3])
	}

	m.Ortho(-1, 1, -1, 1, -1, 1)
	want = M4{{1}, {1: 1}, {2: -1}, {3: 1}}
	if !m.approx(&want) {
		t.Fatalf("M4.Ortho\nhave %v\nwant %v", m, want)
	}

	m.LookAt(&V3{0, 0, 4}, &V3{}, &V3{0, 1, 0})
	want.Translate(0, 0, -4)
	if !m.approx(&want) {
		t.Fatalf("M4.LookAt\nhave %v\nwant %v", m, want)
	}
}
