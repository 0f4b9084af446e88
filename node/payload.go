// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package node

import (
	"github.com/gviegas/orrery/linear"
)

// Kind identifies the kind of payload a Node carries.
type Kind int

// Node kinds.
const (
	PlainNode Kind = iota
	CameraNode
	LightNode
	GeometryNode
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case PlainNode:
		return "plain"
	case CameraNode:
		return "camera"
	case LightNode:
		return "light"
	case GeometryNode:
		return "geometry"
	}
	return "invalid"
}

// Payload is the render-relevant data attached to a Node.
// The set of payloads is closed: it is implemented only
// by *Camera, *Light and *Geometry.
// Payloads never take part in transform computation.
type Payload interface {
	Kind() Kind
	payload()
}

// Kind returns the kind of n.
func (n *Node) Kind() Kind {
	if n.data == nil {
		return PlainNode
	}
	return n.data.Kind()
}

// Payload returns the payload of n, or nil if n is a
// plain node.
func (n *Node) Payload() Payload { return n.data }

// Camera returns the camera payload of n.
func (n *Node) Camera() (*Camera, bool) {
	c, ok := n.data.(*Camera)
	return c, ok
}

// Light returns the light payload of n.
func (n *Node) Light() (*Light, bool) {
	l, ok := n.data.(*Light)
	return l, ok
}

// Geometry returns the geometry payload of n.
func (n *Node) Geometry() (*Geometry, bool) {
	g, ok := n.data.(*Geometry)
	return g, ok
}

// Camera is the payload of a camera node.
type Camera struct {
	perspective bool
	enabled     bool
	proj        linear.M4
}

func (*Camera) Kind() Kind { return CameraNode }
func (*Camera) payload()   {}

// NewCamera creates a camera node and inserts it as the
// last immediate descendant of parent.
// A nil proj is taken as the identity.
// It fails with ErrInvalidParent if parent is nil.
func NewCamera(parent *Node, name string, perspective, enabled bool, proj *linear.M4) (*Node, error) {
	n := new(Node).init(name)
	c := &Camera{perspective: perspective, enabled: enabled}
	if proj != nil {
		c.proj = *proj
	} else {
		c.proj.I()
	}
	n.data = c
	return attach(parent, n)
}

// Perspective returns whether c uses a perspective
// projection (as opposed to an orthographic one).
func (c *Camera) Perspective() bool { return c.perspective }

// Enabled returns whether c is enabled.
func (c *Camera) Enabled() bool { return c.enabled }

// SetEnabled sets whether c is enabled.
func (c *Camera) SetEnabled(enabled bool) { c.enabled = enabled }

// Projection returns the projection matrix of c.
func (c *Camera) Projection() linear.M4 { return c.proj }

// SetProjection sets the projection matrix of c.
func (c *Camera) SetProjection(m *linear.M4) { c.proj = *m }

// Light is the payload of a point light node.
type Light struct {
	intensity float32
	color     linear.V3
}

func (*Light) Kind() Kind { return LightNode }
func (*Light) payload()   {}

// NewLight creates a light node and inserts it as the last
// immediate descendant of parent.
// Negative intensities are clamped to zero. The channels
// of color are clamped to [0, 1] and the result is
// normalized, unless it is black. color must not be nil.
// It fails with ErrInvalidParent if parent is nil.
func NewLight(parent *Node, name string, intensity float32, color *linear.V3) (*Node, error) {
	n := new(Node).init(name)
	l := new(Light)
	l.SetIntensity(intensity)
	for i := range l.color {
		l.color[i] = max(0, min(1, color[i]))
	}
	if l.color != (linear.V3{}) {
		l.color.Norm(&l.color)
	}
	n.data = l
	return attach(parent, n)
}

// Intensity returns the intensity of l.
func (l *Light) Intensity() float32 { return l.intensity }

// SetIntensity sets the intensity of l.
// It is clamped to be no less than zero.
func (l *Light) SetIntensity(i float32) { l.intensity = max(0, i) }

// Color returns the RGB color of l.
func (l *Light) Color() linear.V3 { return l.color }

// SetColor sets the RGB color of l.
// Unlike NewLight, it stores rgb as given.
func (l *Light) SetColor(rgb *linear.V3) { l.color = *rgb }

// GeometryDesc describes the attributes of a geometry node.
type GeometryDesc struct {
	// Scale applied to the model.
	Size float32
	// Angular speed of the orbit, in radians
	// per second.
	Speed float32
	// Orbital distance from the parent's origin.
	Distance float32
	// RGB color; not normalized.
	Color linear.V3
	// Texture reference. Empty means none.
	Texture string
}

// Geometry is the payload of a renderable node.
type Geometry struct {
	size     float32
	speed    float32
	distance float32
	color    linear.V3
	texture  string
	unit     int
	radius   float32
	origin   linear.V3
	handle   any
}

func (*Geometry) Kind() Kind { return GeometryNode }
func (*Geometry) payload()   {}

// NewGeometry creates a geometry node and inserts it as the
// last immediate descendant of parent.
// The orbit radius starts as desc.Distance. The distance to
// origin starts as the zero vector and no texture unit is
// assigned. desc must not be nil.
// It fails with ErrInvalidParent if parent is nil.
func NewGeometry(parent *Node, name string, desc *GeometryDesc) (*Node, error) {
	n := new(Node).init(name)
	n.data = &Geometry{
		size:     desc.Size,
		speed:    desc.Speed,
		distance: desc.Distance,
		color:    desc.Color,
		texture:  desc.Texture,
		unit:     -1,
		radius:   desc.Distance,
	}
	return attach(parent, n)
}

// Size returns the size of g.
func (g *Geometry) Size() float32 { return g.size }

// Speed returns the angular speed of g.
func (g *Geometry) Speed() float32 { return g.speed }

// Distance returns the orbital distance of g.
func (g *Geometry) Distance() float32 { return g.distance }

// Color returns the RGB color of g.
func (g *Geometry) Color() linear.V3 { return g.color }

// SetColor sets the RGB color of g.
// It is stored as given.
func (g *Geometry) SetColor(rgb *linear.V3) { g.color = *rgb }

// Texture returns the texture reference of g.
func (g *Geometry) Texture() (string, bool) { return g.texture, g.texture != "" }

// SetTexture sets the texture reference of g.
// An empty ref removes the texture.
func (g *Geometry) SetTexture(ref string) { g.texture = ref }

// TextureUnit returns the texture unit index of g.
func (g *Geometry) TextureUnit() (int, bool) { return g.unit, g.unit >= 0 }

// SetTextureUnit sets the texture unit index of g.
// Negative values are equivalent to ClearTextureUnit.
func (g *Geometry) SetTextureUnit(unit int) { g.unit = max(-1, unit) }

// ClearTextureUnit removes the texture unit index of g.
func (g *Geometry) ClearTextureUnit() { g.unit = -1 }

// Handle returns the renderer's handle for g.
// It is opaque to this package.
func (g *Geometry) Handle() any { return g.handle }

// SetHandle sets the renderer's handle for g.
func (g *Geometry) SetHandle(h any) { g.handle = h }

// Radius returns the orbit radius of g.
func (g *Geometry) Radius() float32 { return g.radius }

// SetRadius sets the orbit radius of g.
func (g *Geometry) SetRadius(r float32) { g.radius = r }

// DistanceToOrigin returns the cached distance of g to
// its orbit's origin.
// It is not derived from the node's transforms; whoever
// creates the node is responsible for keeping it current.
func (g *Geometry) DistanceToOrigin() linear.V3 { return g.origin }

// SetDistanceToOrigin sets the cached distance of g to
// its orbit's origin.
func (g *Geometry) SetDistanceToOrigin(d *linear.V3) { g.origin = *d }
