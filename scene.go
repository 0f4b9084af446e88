// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package orrery provides the scene graph of an animated
// solar system.
//
// A Graph owns a tree of node.Node values and keeps two
// insertion-ordered indices (geometries and lights) that
// renderers iterate every frame. The tree is the ground
// truth; the indices are caches that the scene-construction
// code fills explicitly.
package orrery

import (
	"errors"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/gviegas/orrery/node"
)

const prefix = "orrery: "

var (
	// ErrNotFound is returned by Graph.Lookup when a path
	// does not lead to a node.
	ErrNotFound = errors.New(prefix + "node not found")

	// ErrKind is returned when registering a node whose
	// kind does not match the index.
	ErrKind = errors.New(prefix + "wrong node kind")
)

// DefaultName is the name of a Graph created with an
// empty name.
const DefaultName = "DefaultSceneGraph"

// Graph is a scene graph.
// It is not safe for concurrent use.
type Graph struct {
	name   string
	root   *node.Node
	geoms  []*node.Node
	lights []*node.Node
}

// New creates a new scene graph.
// If root is nil, a new root is created with node.NewRoot.
func New(name string, root *node.Node) *Graph {
	if name == "" {
		name = DefaultName
	}
	if root == nil {
		root = node.NewRoot()
	}
	return &Graph{name: name, root: root}
}

// Name returns the name of g.
func (g *Graph) Name() string { return g.name }

// Root returns the root node of g.
func (g *Graph) Root() *node.Node { return g.root }

// RegisterGeometry appends n to the geometry index.
// n must be a geometry node. Reachability from the root
// is not verified and duplicates are not removed.
func (g *Graph) RegisterGeometry(n *node.Node) error {
	if n == nil || n.Kind() != node.GeometryNode {
		return ErrKind
	}
	g.geoms = append(g.geoms, n)
	return nil
}

// RegisterLight appends n to the light index.
// n must be a light node. Reachability from the root
// is not verified and duplicates are not removed.
func (g *Graph) RegisterLight(n *node.Node) error {
	if n == nil || n.Kind() != node.LightNode {
		return ErrKind
	}
	g.lights = append(g.lights, n)
	return nil
}

// UnregisterGeometry removes the first occurrence of n
// from the geometry index.
func (g *Graph) UnregisterGeometry(n *node.Node) bool { return unregister(&g.geoms, n) }

// UnregisterLight removes the first occurrence of n
// from the light index.
func (g *Graph) UnregisterLight(n *node.Node) bool { return unregister(&g.lights, n) }

func unregister(s *[]*node.Node, n *node.Node) bool {
	i := slices.Index(*s, n)
	if i < 0 {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

// Geometries returns the geometry index in registration
// order. The returned slice is a copy.
func (g *Graph) Geometries() []*node.Node { return slices.Clone(g.geoms) }

// Lights returns the light index in registration order.
// The returned slice is a copy.
func (g *Graph) Lights() []*node.Node { return slices.Clone(g.lights) }

// Describe returns a textual representation of g:
//
//	Name: <name>, Nodes: <root>
//
// where each node is written as its name, followed by
// " -> (" + <children separated by ", "> + ")" when it
// has children.
func (g *Graph) Describe() string {
	var b strings.Builder
	b.WriteString("Name: ")
	b.WriteString(g.name)
	b.WriteString(", Nodes: ")
	b.WriteString(describe(g.root))
	return b.String()
}

// String implements fmt.Stringer.
func (g *Graph) String() string { return g.Describe() }

func describe(n *node.Node) string {
	sub := n.Children()
	if len(sub) == 0 {
		return n.Name()
	}
	return n.Name() + " -> (" + strings.Join(lo.Map(sub, func(c *node.Node, _ int) string {
		return describe(c)
	}), ", ") + ")"
}

// Find returns the node identified by path.
// path is a sequence of names separated by '/', as
// returned by node.Node.Path; the leading '/' is
// optional. The empty path and "/" identify the root.
// Every segment is matched against the first child with
// that name.
func (g *Graph) Find(path string) (*node.Node, bool) {
	n := g.root
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return n, true
	}
	for _, name := range strings.Split(path, "/") {
		var ok bool
		if n, ok = n.Child(name); !ok {
			return nil, false
		}
	}
	return n, true
}

// Lookup is like Find, but reports a miss as an error
// wrapping ErrNotFound.
func (g *Graph) Lookup(path string) (*node.Node, error) {
	if n, ok := g.Find(path); ok {
		return n, nil
	}
	return nil, &PathError{Path: path, Err: ErrNotFound}
}

// PathError records a failed path lookup.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return e.Err.Error() + ": " + e.Path }
func (e *PathError) Unwrap() error { return e.Err }

// Cameras returns every camera node reachable from the
// root, in pre-order.
func (g *Graph) Cameras() (cams []*node.Node) {
	g.walk(func(n *node.Node) bool {
		if n.Kind() == node.CameraNode {
			cams = append(cams, n)
		}
		return true
	})
	return
}

// EnabledCamera returns the first enabled camera node
// reachable from the root, in pre-order.
func (g *Graph) EnabledCamera() (cam *node.Node, ok bool) {
	g.walk(func(n *node.Node) bool {
		if c, isCam := n.Camera(); isCam && c.Enabled() {
			cam, ok = n, true
			return false
		}
		return true
	})
	return
}

// walk calls f for the root and then for each of its
// descendants, stopping when f returns false.
func (g *Graph) walk(f func(*node.Node) bool) {
	if f(g.root) {
		g.root.Until(f)
	}
}

// Reachable returns whether n is the root of g or one
// of its descendants.
func (g *Graph) Reachable(n *node.Node) bool {
	return n != nil && (n == g.root || g.root.IsAncestorOf(n))
}

// Propagate recomputes every world transform in g from
// the root's local transform.
func (g *Graph) Propagate() {
	l := g.root.Local()
	g.root.SetLocal(&l)
}

// Len returns the number of nodes reachable from the root.
func (g *Graph) Len() int { return g.root.Len() }
