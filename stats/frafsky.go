// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/graphstat/indep/mst"
)

// FriedmanRafsky is the multivariate runs statistic of Friedman and
// Rafsky [1].
//
// It joins the rows of a sample by their Euclidean minimum spanning
// tree and counts the tree edges whose endpoints carry different
// labels. Few such edges mean that the groups occupy separate regions
// of the space, which is evidence that location depends on label.
// The test therefore rejects in the Lower tail.
//
// The tree depends only on the sample, so Prepare builds it once and
// every relabelling costs O(n).
//
// [1] Friedman, Jerome H.; Rafsky, Lawrence C. (1979). "Multivariate
// Generalizations of the Wald-Wolfowitz and Smirnov Two-Sample
// Tests". Annals of Statistics 7 (4): 697-717.
type FriedmanRafsky struct{}

// Statistic returns the number of cross-label edges in the minimum
// spanning tree of the rows of x.
func (f FriedmanRafsky) Statistic(x mat.Matrix, y []int) (float64, error) {
	if err := checkLabels(x, y); err != nil {
		return 0, err
	}
	ls, err := f.Prepare(x)
	if err != nil {
		return 0, err
	}
	return ls.Eval(y), nil
}

// Prepare builds the minimum spanning tree of the rows of x.
//
// The returned LabelStatistic is also an Approximator.
func (FriedmanRafsky) Prepare(x mat.Matrix) (LabelStatistic, error) {
	tree, err := mst.Euclidean(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateInput, err)
	}
	return newRunsTree(tree), nil
}

// Tail returns Lower.
func (FriedmanRafsky) Tail() Tail {
	return Lower
}

// Test runs a permutation test with the Friedman-Rafsky statistic.
// See the package-level Test.
func (f FriedmanRafsky) Test(x mat.Matrix, y []int, opts ...Option) (*Result, error) {
	return Test(f, x, y, opts...)
}

// runsTree is a spanning tree prepared for counting runs.
type runsTree struct {
	tree *mst.Tree

	// pairs is the number of pairs of edges sharing a node,
	// sum over nodes of degree*(degree-1)/2.
	pairs float64
}

func newRunsTree(tree *mst.Tree) *runsTree {
	rt := &runsTree{tree: tree}
	for i := 0; i < tree.NumNodes(); i++ {
		d := float64(tree.Degree(i))
		rt.pairs += d * (d - 1) / 2
	}
	return rt
}

func (rt *runsTree) Eval(y []int) float64 {
	return float64(rt.tree.CrossEdges(y))
}

// Moments returns the mean and variance of the cross-edge count over
// all relabellings that keep the group sizes of y, from Friedman and
// Rafsky (1979), equations 14 and 15.
func (rt *runsTree) Moments(y []int) (mean, variance float64, ok bool) {
	if len(y) < 4 || Groups(y) != 2 {
		return 0, 0, false
	}
	var m int
	for _, label := range y {
		if label == y[0] {
			m++
		}
	}
	N := float64(len(y))
	mf, nf := float64(m), N-float64(m)
	mn2 := 2 * mf * nf

	mean = mn2 / N
	variance = mn2 / (N * (N - 1)) *
		((mn2-N)/N + (rt.pairs-N+2)/((N-2)*(N-3))*(N*(N-1)-2*mn2+2))
	return mean, variance, true
}
