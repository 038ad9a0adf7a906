// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import (
	"github.com/graphstat/indep/graph"
)

// PreOrder returns the nodes of g reachable from root, in depth-first
// pre-order.
//
// The traversal uses an explicit stack, so long paths (such as the
// spanning tree of points on a line) do not grow the goroutine stack.
func PreOrder(g graph.Graph, root int) []int {
	visited := NewNodeMarks()
	out := []int{}
	stack := []int{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Test(n) {
			continue
		}
		visited.Mark(n)
		out = append(out, n)
		// Push in reverse so successors are visited in Out order.
		succs := g.Out(n)
		for i := len(succs) - 1; i >= 0; i-- {
			if !visited.Test(succs[i]) {
				stack = append(stack, succs[i])
			}
		}
	}
	return out
}
