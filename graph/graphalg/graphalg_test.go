// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import (
	"reflect"
	"testing"

	"github.com/graphstat/indep/graph"
	"github.com/graphstat/indep/graph/graphout"
)

// forest is two undirected trees, {0, 2, 4} and {1, 3}, plus the
// isolated node 5.
var forest = graph.IntGraph{
	0: {2},
	1: {3},
	2: {0, 4},
	3: {1},
	4: {2},
	5: {},
}

func TestPreOrder(t *testing.T) {
	tests := []struct {
		g    graph.Graph
		root int
		want []int
	}{
		{forest, 0, []int{0, 2, 4}},
		{forest, 4, []int{4, 2, 0}},
		{forest, 5, []int{5}},
		{graph.IntGraph{0: {1, 2}, 1: {3}, 2: {}, 3: {}}, 0, []int{0, 1, 3, 2}},
		{graph.IntGraph{0: {0, 1}, 1: {0}}, 0, []int{0, 1}},
	}
	for _, test := range tests {
		got := PreOrder(test.g, test.root)
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("PreOrder(%v, %d) = %v, want %v", test.g, test.root, got, test.want)
		}
	}
}

func TestPreOrderLongPath(t *testing.T) {
	const n = 100000
	g := make(graph.IntGraph, n)
	for i := 0; i+1 < n; i++ {
		g[i] = append(g[i], i+1)
		g[i+1] = append(g[i+1], i)
	}
	if got := len(PreOrder(g, n/2)); got != n {
		t.Errorf("visited %d nodes, want %d", got, n)
	}
}

func TestConnectedComponents(t *testing.T) {
	c := ConnectedComponents(forest)
	want := [][]int{{0, 2, 4}, {1, 3}, {5}}
	var got [][]int
	for i := 0; i < c.NumNodes(); i++ {
		got = append(got, c.Nodes(i))
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("want components:\n%v\ngot:\n%v", want, got)
	}
	for node, comp := range []int{0, 1, 0, 1, 0, 2} {
		if c.Component(node) != comp {
			t.Errorf("Component(%d) = %d, want %d", node, c.Component(node), comp)
		}
	}
	if !graph.Equal(graph.IntGraph{{}, {}, {}}, c) {
		t.Errorf("components should have no edges:\n%s", graphout.Dot{}.Sprint(c))
	}
}

func TestConnectedComponentsAfterCut(t *testing.T) {
	cut := graph.RemoveEdges(forest, graph.FindEdges(forest, 2, 4))
	c := ConnectedComponents(cut)
	if c.NumNodes() != 4 {
		t.Fatalf("got %d components, want 4", c.NumNodes())
	}
	if c.Component(0) == c.Component(4) {
		t.Errorf("nodes 0 and 4 still connected after cut")
	}
}
