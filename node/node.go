// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package node implements the elements of the scene graph.
package node

import (
	"errors"
	"slices"

	"github.com/gviegas/orrery/linear"
)

const prefix = "node: "

// ErrInvalidParent is returned when a node that requires
// a parent is created without one.
var ErrInvalidParent = errors.New(prefix + "invalid parent")

// RootName is the name given to nodes created by NewRoot.
const RootName = "root"

// Node represents a single node in a scene graph.
// Nodes have at most one immediate ancestor and an
// arbitrary number of immediate descendants, kept in
// insertion order.
//
// The world transform of a node is always the composition
// of its ancestors' local transforms with its own. Any
// operation that changes a local transform or the position
// of a node in the graph recomputes the world transforms
// of the affected subtree before returning.
//
// Nodes are not safe for concurrent use.
type Node struct {
	name string
	// Weak reference: a child never keeps
	// its parent alive.
	parent *Node
	sub    []*Node
	depth  int
	path   string
	local  linear.M4
	world  linear.M4
	data   Payload
}

// init initializes n as a detached node.
func (n *Node) init(name string) *Node {
	n.name = name
	n.local.I()
	n.world.I()
	return n
}

// NewRoot creates a node suitable for use as the root
// of a scene graph.
// Its name is RootName, its depth is 0 and its path is
// empty. Local and world transforms are the identity.
func NewRoot() *Node { return new(Node).init(RootName) }

// NewDetached creates a parentless node with the given name.
// It can later be attached to a graph with AddChild.
func NewDetached(name string) *Node { return new(Node).init(name) }

// New creates a node and inserts it as the last immediate
// descendant of parent.
// The new node's world transform is computed immediately.
// It fails with ErrInvalidParent if parent is nil.
func New(parent *Node, name string) (*Node, error) {
	return attach(parent, new(Node).init(name))
}

// attach inserts n into parent.
func attach(parent, n *Node) (*Node, error) {
	if parent == nil {
		return nil, ErrInvalidParent
	}
	parent.AddChild(n)
	return n, nil
}

// Name returns the name of n.
func (n *Node) Name() string { return n.name }

// Parent returns the immediate ancestor of n, or nil if
// n has no parent.
func (n *Node) Parent() *Node { return n.parent }

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int { return n.depth }

// Path returns the names of n's ancestors, excluding the
// topmost one, followed by n's name, each preceded by a
// '/'. The path of a parentless node is empty.
func (n *Node) Path() string { return n.path }

// Local returns the local transform of n.
func (n *Node) Local() linear.M4 { return n.local }

// World returns the world transform of n.
func (n *Node) World() linear.M4 { return n.world }

// Children returns the immediate descendants of n in
// insertion order.
// The returned slice is a copy.
func (n *Node) Children() []*Node { return slices.Clone(n.sub) }

// NumChildren returns the number of immediate descendants
// of n.
func (n *Node) NumChildren() int { return len(n.sub) }

// Child returns the first immediate descendant of n whose
// name is name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.sub {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// IsAncestorOf returns whether n is an ancestor of m.
func (n *Node) IsAncestorOf(m *Node) bool {
	for p := m.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// AddChild inserts sub as the last immediate descendant
// of n. If sub has a parent, it is removed from it first.
// The depth, path and world transform of every node in
// the sub-graph rooted at sub are updated.
// It returns false, and does nothing, if sub is nil, n
// itself or an ancestor of n.
func (n *Node) AddChild(sub *Node) bool {
	if sub == nil || sub == n || sub.IsAncestorOf(n) {
		return false
	}
	if sub.parent != nil {
		sub.parent.unlink(sub)
	}
	sub.parent = n
	n.sub = append(n.sub, sub)
	sub.rebase()
	sub.propagate()
	return true
}

// RemoveChild removes the first immediate descendant of n
// whose name is name and returns it.
// Other descendants that share the same name are kept.
// The removed node becomes parentless; it retains its
// local and world transforms, and its sub-graph is rebased
// so that depths and paths are relative to it.
func (n *Node) RemoveChild(name string) (*Node, bool) {
	sub, ok := n.Child(name)
	if !ok {
		return nil, false
	}
	n.Remove(sub)
	return sub, true
}

// Remove removes sub from the immediate descendants of n.
// It returns false if sub is not an immediate descendant
// of n.
func (n *Node) Remove(sub *Node) bool {
	if sub == nil || sub.parent != n {
		return false
	}
	n.unlink(sub)
	sub.parent = nil
	sub.rebase()
	return true
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// unlink removes sub from n.sub.
// It does not change sub.
func (n *Node) unlink(sub *Node) {
	if i := slices.Index(n.sub, sub); i >= 0 {
		n.sub = slices.Delete(n.sub, i, i+1)
	}
}

// rebase recomputes depth and path of n and of its
// descendants from n.parent.
func (n *Node) rebase() {
	if p := n.parent; p != nil {
		n.depth = p.depth + 1
		n.path = p.path + "/" + n.name
	} else {
		n.depth = 0
		n.path = ""
	}
	for _, c := range n.sub {
		c.rebase()
	}
}

// SetLocal sets the local transform of n.
// The world transforms of n and of its descendants are
// recomputed before SetLocal returns.
func (n *Node) SetLocal(m *linear.M4) {
	n.local = *m
	n.propagate()
}

// propagate recomputes the world transform of n and
// of its descendants, depth-first.
func (n *Node) propagate() {
	if p := n.parent; p != nil {
		n.world.Mul(&p.world, &n.local)
	} else {
		n.world = n.local
	}
	for _, c := range n.sub {
		c.propagate()
	}
}

// ForEach calls f for each descendant of node n.
// Ancestors are processed first and siblings are
// processed in insertion order.
// The scene graph must not be changed until this
// method returns.
func (n *Node) ForEach(f func(*Node)) {
	for _, c := range n.sub {
		f(c)
		c.ForEach(f)
	}
}

// Until calls f for each descendant of node n, in the
// same order as ForEach. If f returns false, Until
// returns immediately.
// It returns false if it was interrupted by f.
// The scene graph must not be changed until this
// method returns.
func (n *Node) Until(f func(*Node) bool) bool {
	for _, c := range n.sub {
		if !f(c) || !c.Until(f) {
			return false
		}
	}
	return true
}

// Len returns the number of nodes in the sub-graph
// rooted at n, including n.
func (n *Node) Len() int {
	cnt := 1
	n.ForEach(func(*Node) { cnt++ })
	return cnt
}
