// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Result is the outcome of a permutation test.
type Result struct {
	// Statistic is the value of the test statistic on the
	// observed labelling.
	Statistic float64

	// PValue is the permutation p-value,
	//
	//	(1 + #{i : Null[i] at least as extreme as Statistic}) / (Reps + 1),
	//
	// so it always lies in [1/(Reps+1), 1]. For the
	// Friedman-Rafsky statistic, small values are extreme.
	//
	// When Auto is set, PValue comes from a normal approximation
	// instead and is clamped to the same range.
	PValue float64

	// Null holds the statistic under each random relabelling, in
	// repetition order. It is nil when Auto is set.
	Null []float64

	// Reps is the number of relabellings drawn, or that the
	// p-value resolution is quoted against when Auto is set.
	Reps int

	// Auto reports that the asymptotic approximation was used.
	Auto bool

	// Seed is the root seed of the relabellings. Passing it to
	// WithSeed reproduces this result.
	Seed uint64
}
