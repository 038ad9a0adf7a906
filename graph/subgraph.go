// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// A Subgraph is a Graph made of a subset of the nodes and edges of
// another, underlying Graph.
//
// If the underlying graph is Weighted, so is the Subgraph, and every
// kept edge keeps its weight.
type Subgraph interface {
	Weighted

	// Underlying returns the graph this is a subgraph of.
	Underlying() Graph

	// UnderlyingNode returns the node ID in the underlying graph
	// of subgraph node i.
	UnderlyingNode(i int) int
}

// RemoveEdges returns the subgraph of g with the given out-edges
// removed. Every node is kept and keeps its ID.
//
// To drop an undirected edge from a symmetric graph, pass both of
// its directions (see FindEdges).
func RemoveEdges(g Graph, edges []Edge) Subgraph {
	return SubgraphRemove(g, nil, edges)
}

// SubgraphRemove returns the subgraph of g without the given nodes,
// without the given out-edges, and without every edge incident to a
// removed node. Remaining nodes are renumbered densely in their
// original order.
func SubgraphRemove(g Graph, nodes []int, edges []Edge) Subgraph {
	n := g.NumNodes()
	dropNode := make([]bool, n)
	for _, node := range nodes {
		if node < 0 || node >= n {
			panic("node not in underlying graph")
		}
		dropNode[node] = true
	}
	dropEdge := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		dropEdge[e] = true
	}

	oldToNew := make([]int, n)
	s := &listSubgraph{underlying: g}
	for old := 0; old < n; old++ {
		if dropNode[old] {
			oldToNew[old] = -1
			continue
		}
		oldToNew[old] = len(s.nodes)
		s.nodes = append(s.nodes, listSubgraphNode{oldNode: old})
	}

	w, _ := g.(Weighted)
	for i := range s.nodes {
		node := &s.nodes[i]
		for e, to := range g.Out(node.oldNode) {
			if dropNode[to] || dropEdge[Edge{node.oldNode, e}] {
				continue
			}
			node.out = append(node.out, oldToNew[to])
			weight := 1.0
			if w != nil {
				weight = w.OutWeight(node.oldNode, e)
			}
			node.weights = append(node.weights, weight)
		}
	}
	return s
}

type listSubgraph struct {
	underlying Graph
	nodes      []listSubgraphNode
}

type listSubgraphNode struct {
	out     []int     // Adjacency list
	weights []float64 // Parallel to out; 1 if the underlying graph is unweighted
	oldNode int       // Node ID in underlying graph
}

func (s *listSubgraph) NumNodes() int {
	return len(s.nodes)
}

func (s *listSubgraph) Out(node int) []int {
	return s.nodes[node].out
}

func (s *listSubgraph) OutWeight(node, e int) float64 {
	return s.nodes[node].weights[e]
}

func (s *listSubgraph) Underlying() Graph {
	return s.underlying
}

func (s *listSubgraph) UnderlyingNode(i int) int {
	return s.nodes[i].oldNode
}
