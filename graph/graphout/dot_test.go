// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphout

import (
	"testing"

	"github.com/graphstat/indep/graph"
)

type weightedPath struct{ graph.IntGraph }

func (p weightedPath) OutWeight(i, e int) float64 {
	return 0.5 * float64(i+p.IntGraph[i][e])
}

var path3 = weightedPath{graph.IntGraph{
	0: {1},
	1: {0, 2},
	2: {1},
}}

func TestDotDirected(t *testing.T) {
	got := Dot{}.Sprint(graph.IntGraph{0: {1}, 1: {}})
	want := `digraph "" {
n0 [label="0"];
n0 -> n1;
n1 [label="1"];
}
`
	if got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestDotUndirectedWeights(t *testing.T) {
	d := Dot{
		Name:       "mst",
		Undirected: true,
		Weights:    true,
		NodeAttrs: func(node int) []DotAttr {
			if node == 2 {
				return []DotAttr{{"color", "red"}}
			}
			return nil
		},
	}
	got := d.Sprint(path3)
	want := `graph "mst" {
n0 [label="0"];
n0 -- n1 [label="0.5"];
n1 [label="1"];
n1 -- n2 [label="1.5"];
n2 [color="red",label="2"];
}
`
	if got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestDotString(t *testing.T) {
	for in, want := range map[string]string{
		"plain":   `"plain"`,
		"a\nb":    `"a\nb"`,
		`{x|"y"}`: `"\{x\|\"y\"\}"`,
	} {
		if got := DotString(in); got != want {
			t.Errorf("DotString(%q) = %s, want %s", in, got, want)
		}
	}
}
