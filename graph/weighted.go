// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Weighted is a Graph with a weight on every out-edge.
type Weighted interface {
	Graph

	// OutWeight returns the weight of the e'th edge out from node
	// i. e must be in the range [0, len(Out(i))).
	OutWeight(i, e int) float64
}

// UndirectedWeight returns the total weight of a symmetric graph,
// counting each undirected edge once. Self-loops, which appear once
// in their node's adjacency, count half.
func UndirectedWeight(g Weighted) float64 {
	var sum float64
	for i := 0; i < g.NumNodes(); i++ {
		for e := range g.Out(i) {
			sum += g.OutWeight(i, e)
		}
	}
	return sum / 2
}

// FindEdges returns the out-edge positions that connect u and v in
// either direction.
func FindEdges(g Graph, u, v int) []Edge {
	var edges []Edge
	for e, to := range g.Out(u) {
		if to == v {
			edges = append(edges, Edge{u, e})
		}
	}
	if u == v {
		return edges
	}
	for e, to := range g.Out(v) {
		if to == u {
			edges = append(edges, Edge{v, e})
		}
	}
	return edges
}
