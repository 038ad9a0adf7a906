// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the small, index-based graph interfaces shared
// by the spanning tree builder and its checkers.
//
// Nodes are identified by dense integers in [0, NumNodes()). An
// undirected graph is represented symmetrically: an edge {u, v}
// appears in both Out(u) and Out(v).
package graph

// Graph is a directed graph with dense integer node IDs.
type Graph interface {
	// NumNodes returns the number of nodes in this graph.
	NumNodes() int

	// Out returns the successors of node i. The caller must not
	// modify the returned slice.
	Out(i int) []int
}

// Edge names the e'th out-edge of Node. It is a position in an
// adjacency list, not a pair of endpoints.
type Edge struct {
	Node, Edge int
}

// IntGraph is a Graph stored as a plain adjacency list.
type IntGraph [][]int

// NumNodes returns len(g).
func (g IntGraph) NumNodes() int {
	return len(g)
}

// Out returns g[i].
func (g IntGraph) Out(i int) []int {
	return g[i]
}
