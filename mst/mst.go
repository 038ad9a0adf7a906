// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mst builds Euclidean minimum spanning trees over the rows
// of a sample matrix.
//
// The builder is a dense O(m²·d) Prim's algorithm: it never
// materializes the m×m distance matrix, which keeps memory linear in
// the number of points. Ties between equal-length edges are broken by
// the ascending index pair (min(u,v), max(u,v)), so the same input
// always yields the same tree.
package mst

import "errors"

var (
	// ErrDegenerate is returned when the points cannot be spanned
	// by a meaningful tree.
	ErrDegenerate = errors.New("degenerate point set")

	// ErrTooFewPoints is returned, wrapped in ErrDegenerate, for
	// fewer than two points.
	ErrTooFewPoints = errors.New("need at least two points")

	// ErrNonFinite is returned, wrapped in ErrDegenerate, when a
	// coordinate is NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrNoCoordinates is returned, wrapped in ErrDegenerate, when
	// the points have zero dimensions.
	ErrNoCoordinates = errors.New("points have no coordinates")

	// ErrNotSpanning is returned by Verify when a tree does not
	// connect every point with exactly m-1 edges.
	ErrNotSpanning = errors.New("not a spanning tree")

	// ErrNotMinimal is returned by Verify when a spanning tree has
	// a lighter replacement for one of its edges.
	ErrNotMinimal = errors.New("spanning tree is not minimal")
)
