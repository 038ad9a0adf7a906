// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng derives reproducible random streams from a root seed.
//
// Stream i of a root seed is fully determined by (root, i), so work
// indexed by i may run in any order or on any goroutine and still
// consume exactly the same random numbers.
package rng

import "math/rand/v2"

// Derive mixes root and index into a new seed. The root is scrambled
// on its own before the index is added, so the streams of distinct
// roots do not overlap.
func Derive(root, index uint64) uint64 {
	return splitmix(splitmix(root) + index)
}

// splitmix is the SplitMix64 output function.
//
// Vigna, S. (2014), "Further scramblings of Marsaglia's xorshift
// generators".
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Stream returns a new generator for stream index of root.
//
// A *rand.Rand is not safe for concurrent use; each goroutine must
// own its stream.
func Stream(root, index uint64) *rand.Rand {
	return rand.New(rand.NewPCG(Derive(root, index), index))
}

// NewSeed returns a fresh, unpredictable root seed.
func NewSeed() uint64 {
	return rand.Uint64()
}
