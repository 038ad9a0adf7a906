// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mst

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Euclidean returns the minimum spanning tree of the rows of points
// under Euclidean distance.
//
// Among trees of equal total length, Euclidean picks the one found by
// always adding the lightest edge leaving the tree, comparing equal
// lengths by their ascending index pair. In particular, duplicate
// points are joined by zero-length edges in index order.
//
// Euclidean returns an error wrapping ErrDegenerate if points has
// fewer than two rows, no columns, or a non-finite entry.
func Euclidean(points mat.Matrix) (*Tree, error) {
	rows, err := Rows(points)
	if err != nil {
		return nil, err
	}
	return prim(len(rows), func(i, j int) float64 {
		return floats.Distance(rows[i], rows[j], 2)
	}), nil
}

// Rows copies the rows of points and checks that they can be
// spanned.
func Rows(points mat.Matrix) ([][]float64, error) {
	if points == nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, ErrTooFewPoints)
	}
	m, d := points.Dims()
	if m < 2 {
		return nil, fmt.Errorf("%w: %w: got %d", ErrDegenerate, ErrTooFewPoints, m)
	}
	if d == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, ErrNoCoordinates)
	}
	rows := make([][]float64, m)
	for i := range rows {
		rows[i] = mat.Row(nil, i, points)
		for j, v := range rows[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %w at (%d, %d)", ErrDegenerate, ErrNonFinite, i, j)
			}
		}
	}
	return rows, nil
}

// prim grows the tree from point 0, keeping for every point outside
// the tree its cheapest connection to the tree.
func prim(m int, dist func(i, j int) float64) *Tree {
	inTree := make([]bool, m)
	best := make([]float64, m)
	parent := make([]int, m)

	inTree[0] = true
	for v := 1; v < m; v++ {
		best[v] = dist(0, v)
		parent[v] = 0
	}

	edges := make([]Edge, 0, m-1)
	for len(edges) < m-1 {
		next := -1
		for v := 1; v < m; v++ {
			if inTree[v] {
				continue
			}
			if next < 0 || best[v] < best[next] ||
				(best[v] == best[next] && pairLess(parent[v], v, parent[next], next)) {
				next = v
			}
		}

		inTree[next] = true
		edges = append(edges, Edge{min(parent[next], next), max(parent[next], next), best[next]})

		for w := 1; w < m; w++ {
			if inTree[w] {
				continue
			}
			d := dist(next, w)
			if d < best[w] || (d == best[w] && pairLess(next, w, parent[w], w)) {
				best[w] = d
				parent[w] = next
			}
		}
	}
	return NewTree(m, edges)
}
