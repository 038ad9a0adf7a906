// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mst

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/graphstat/indep/graph"
	"github.com/graphstat/indep/graph/graphalg"
)

// Verify checks that t is a minimum spanning tree of the rows of
// points.
//
// It checks the tree is spanning (m-1 edges with correct lengths that
// connect every point) and that it satisfies the cut property: removing
// any edge splits the points in two, and no pair of points across that
// split is closer than the removed edge. Verify costs O(m³·d) and is
// meant for tests and diagnostics.
func Verify(points mat.Matrix, t *Tree) error {
	rows, err := Rows(points)
	if err != nil {
		return err
	}
	m := len(rows)
	if t.NumNodes() != m {
		return fmt.Errorf("%w: tree has %d nodes, want %d", ErrNotSpanning, t.NumNodes(), m)
	}
	if len(t.Edges) != m-1 {
		return fmt.Errorf("%w: tree has %d edges, want %d", ErrNotSpanning, len(t.Edges), m-1)
	}
	for _, e := range t.Edges {
		if e.U < 0 || e.V >= m || e.U == e.V {
			return fmt.Errorf("%w: bad edge %v", ErrNotSpanning, e)
		}
		if d := floats.Distance(rows[e.U], rows[e.V], 2); !sameLength(d, e.Weight) {
			return fmt.Errorf("%w: edge %v has length %g", ErrNotSpanning, e, d)
		}
	}
	if n := len(graphalg.PreOrder(t, 0)); n != m {
		return fmt.Errorf("%w: only %d of %d points reachable", ErrNotSpanning, n, m)
	}

	for _, e := range t.Edges {
		halves := graphalg.ConnectedComponents(graph.RemoveEdges(t, graph.FindEdges(t, e.U, e.V)))
		side := halves.Nodes(halves.Component(e.U))
		other := halves.Nodes(halves.Component(e.V))
		for _, i := range side {
			for _, j := range other {
				if d := floats.Distance(rows[i], rows[j], 2); d < e.Weight && !sameLength(d, e.Weight) {
					return fmt.Errorf("%w: edge %v can be replaced by %d-%d(%g)", ErrNotMinimal, e, min(i, j), max(i, j), d)
				}
			}
		}
	}
	return nil
}

func sameLength(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, 1e-12, 1e-9)
}
