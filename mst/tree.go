// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mst

import (
	"fmt"

	"github.com/graphstat/indep/graph"
)

// Edge is an undirected tree edge with U < V.
type Edge struct {
	U, V   int
	Weight float64
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.U, e.V, e.Weight)
}

// pairLess orders unordered index pairs by (min, max).
func pairLess(u1, v1, u2, v2 int) bool {
	if u1 > v1 {
		u1, v1 = v1, u1
	}
	if u2 > v2 {
		u2, v2 = v2, u2
	}
	if u1 != u2 {
		return u1 < u2
	}
	return v1 < v2
}

// Tree is a spanning tree over m points.
//
// Tree implements graph.Weighted symmetrically: every edge {u, v}
// appears in both Out(u) and Out(v), with the same weight.
type Tree struct {
	// Edges lists the tree edges in the order they were added.
	Edges []Edge

	adj  [][]int
	adjW [][]float64
}

// NewTree returns the tree over m points with the given edges. It
// does not check that edges form a spanning tree; see Verify. It
// panics if an edge endpoint is outside [0, m).
func NewTree(m int, edges []Edge) *Tree {
	t := &Tree{
		Edges: make([]Edge, len(edges)),
		adj:   make([][]int, m),
		adjW:  make([][]float64, m),
	}
	for k, e := range edges {
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		t.Edges[k] = e
		t.link(e.U, e.V, e.Weight)
		if e.U != e.V {
			t.link(e.V, e.U, e.Weight)
		}
	}
	return t
}

func (t *Tree) link(from, to int, w float64) {
	t.adj[from] = append(t.adj[from], to)
	t.adjW[from] = append(t.adjW[from], w)
}

// NumNodes returns the number of points spanned by t.
func (t *Tree) NumNodes() int {
	return len(t.adj)
}

// Out returns the tree neighbors of point i.
func (t *Tree) Out(i int) []int {
	return t.adj[i]
}

// OutWeight returns the length of the e'th edge out of point i.
func (t *Tree) OutWeight(i, e int) float64 {
	return t.adjW[i][e]
}

// Degree returns the number of tree edges incident to point i.
func (t *Tree) Degree(i int) int {
	return len(t.adj[i])
}

// Weight returns the total length of the tree.
func (t *Tree) Weight() float64 {
	return graph.UndirectedWeight(t)
}

// CrossEdges returns the number of edges whose endpoints carry
// different labels. labels must have one entry per point.
func (t *Tree) CrossEdges(labels []int) int {
	n := 0
	for _, e := range t.Edges {
		if labels[e.U] != labels[e.V] {
			n++
		}
	}
	return n
}
