// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import (
	"github.com/graphstat/indep/graph"
)

// Components is the connected-component partition of a symmetric
// graph.
//
// Components is itself a graph.Graph with one node per component and
// no edges.
type Components struct {
	comp  []int   // Node -> component
	nodes [][]int // Component -> nodes, ascending
}

// ConnectedComponents computes the connected components of g, which
// must be symmetric: every edge u->v has a matching edge v->u.
//
// Components are numbered in order of their smallest node.
func ConnectedComponents(g graph.Graph) *Components {
	n := g.NumNodes()
	c := &Components{comp: make([]int, n)}
	for i := range c.comp {
		c.comp[i] = -1
	}
	for root := 0; root < n; root++ {
		if c.comp[root] >= 0 {
			continue
		}
		id := len(c.nodes)
		members := PreOrder(g, root)
		for _, node := range members {
			c.comp[node] = id
		}
		c.nodes = append(c.nodes, sortedCopy(members))
	}
	return c
}

// NumNodes returns the number of components.
func (c *Components) NumNodes() int {
	return len(c.nodes)
}

// Out returns nil. Components of a symmetric graph are never
// connected to each other.
func (c *Components) Out(i int) []int {
	return nil
}

// Component returns the component containing node i of the original
// graph.
func (c *Components) Component(i int) int {
	return c.comp[i]
}

// Nodes returns the nodes of component i in ascending order. The
// caller must not modify the returned slice.
func (c *Components) Nodes(i int) []int {
	return c.nodes[i]
}

func sortedCopy(xs []int) []int {
	marks := NewNodeMarks()
	for _, x := range xs {
		marks.Mark(x)
	}
	out := make([]int, 0, len(xs))
	for i := marks.Next(-1); i >= 0; i = marks.Next(i) {
		out = append(out, i)
	}
	return out
}
