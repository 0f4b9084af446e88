// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package node

import (
	"github.com/gviegas/orrery/linear"
)

// Batch collects local transform changes to be applied
// together.
// Nothing is written to the nodes until Commit is called,
// so world transforms never observe a partial batch.
// Commit propagates once from each topmost changed node,
// so a sub-graph is recomputed once per commit even when
// several of its nodes changed.
// The zero value is ready for use.
type Batch struct {
	nodes []*Node
	local []linear.M4
	index map[*Node]int
}

// Set records m as the new local transform of n.
// Setting the same node twice keeps the last value.
func (b *Batch) Set(n *Node, m *linear.M4) {
	if b.index == nil {
		b.index = make(map[*Node]int)
	}
	if i, ok := b.index[n]; ok {
		b.local[i] = *m
		return
	}
	b.index[n] = len(b.nodes)
	b.nodes = append(b.nodes, n)
	b.local = append(b.local, *m)
}

// Len returns the number of nodes recorded in b.
func (b *Batch) Len() int { return len(b.nodes) }

// Commit applies the recorded changes and resets b.
// It returns the number of sub-graphs that were
// recomputed.
func (b *Batch) Commit() (n int) {
	for i, nd := range b.nodes {
		nd.local = b.local[i]
	}
	for _, nd := range b.nodes {
		if b.covered(nd) {
			continue
		}
		nd.propagate()
		n++
	}
	b.Reset()
	return
}

// covered returns whether an ancestor of n is in b.
func (b *Batch) covered(n *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if _, ok := b.index[p]; ok {
			return true
		}
	}
	return false
}

// Reset discards the recorded changes.
func (b *Batch) Reset() {
	clear(b.index)
	clear(b.nodes)
	b.nodes = b.nodes[:0]
	b.local = b.local[:0]
}
