// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Groups returns the number of distinct labels in y.
func Groups(y []int) int {
	seen := make(map[int]struct{}, 2)
	for _, label := range y {
		seen[label] = struct{}{}
	}
	return len(seen)
}

// MedianSplit labels each row of y by whether its mean lies above the
// median row mean. Rows above the median get label 1, the rest get
// label 0.
//
// This turns a continuous paired sample into two groups of sizes as
// equal as ties allow, so that a two-sample statistic on x tests the
// dependence of x on y.
//
// MedianSplit fails with ErrInputShape if y is empty and with
// ErrDegenerateInput if y has a non-finite entry or every row has the
// same mean.
func MedianSplit(y mat.Matrix) ([]int, error) {
	if y == nil {
		return nil, fmt.Errorf("%w: nil sample", ErrInputShape)
	}
	r, c := y.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInputShape)
	}

	means := make([]float64, r)
	row := make([]float64, c)
	for i := range means {
		mat.Row(row, i, y)
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite value in row %d", ErrDegenerateInput, i)
			}
		}
		means[i] = stat.Mean(row, nil)
	}
	sorted := append([]float64(nil), means...)
	sort.Float64s(sorted)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	labels := make([]int, r)
	for i, m := range means {
		if m > median {
			labels[i] = 1
		}
	}
	if Groups(labels) < 2 {
		return nil, fmt.Errorf("%w: all %d rows have the same mean", ErrDegenerateInput, r)
	}
	return labels, nil
}
