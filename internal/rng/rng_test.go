// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(root, index uint64, k int) []uint64 {
	r := Stream(root, index)
	out := make([]uint64, k)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

func TestStreamDeterministic(t *testing.T) {
	assert.Equal(t, draw(42, 7, 16), draw(42, 7, 16))
}

func TestStreamsDiffer(t *testing.T) {
	assert.NotEqual(t, draw(42, 0, 4), draw(42, 1, 4))
	assert.NotEqual(t, draw(42, 0, 4), draw(43, 0, 4))
}

func TestDeriveAvalanche(t *testing.T) {
	// Adjacent indexes must not produce adjacent seeds.
	seen := make(map[uint64]bool)
	for i := uint64(0); i < 1000; i++ {
		s := Derive(1, i)
		assert.False(t, seen[s], "duplicate seed at index %d", i)
		seen[s] = true
		if i > 0 {
			assert.NotEqual(t, Derive(1, i-1)+1, s)
		}
	}
}

func TestDeriveRootsDisjoint(t *testing.T) {
	for _, roots := range [][2]uint64{{1, 2}, {1, 3}, {0, 1}, {41, 42}} {
		seen := make(map[uint64]bool)
		for i := uint64(0); i < 1000; i++ {
			seen[Derive(roots[0], i)] = true
		}
		shared := 0
		for i := uint64(0); i < 1000; i++ {
			if seen[Derive(roots[1], i)] {
				shared++
			}
		}
		assert.Zero(t, shared, "roots %d and %d share seeds", roots[0], roots[1])
	}
}
