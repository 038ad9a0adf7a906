// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements graph-based nonparametric tests of
// independence and the permutation machinery they share.
//
// The main entry point is Test, which computes a statistic on a
// labelled sample and calibrates it against the statistic's
// distribution under random relabelling. FriedmanRafsky is the
// minimum-spanning-tree statistic of Friedman and Rafsky (1979).
package stats // import "github.com/graphstat/indep/stats"

import "errors"

var (
	// ErrInputShape is returned when the sample matrix and its
	// labels do not describe the same observations.
	ErrInputShape = errors.New("sample and labels have incompatible shapes")

	// ErrDegenerateInput is returned when a statistic is undefined
	// for the input, such as when every observation carries the
	// same label or a coordinate is not finite.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidConfig is returned for option values out of range.
	ErrInvalidConfig = errors.New("invalid configuration")
)
