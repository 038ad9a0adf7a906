// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "slices"

// Equal reports whether g1 and g2 have the same nodes and the same
// multiset of successors at every node. The order of adjacency
// lists is ignored.
func Equal(g1, g2 Graph) bool {
	n := g1.NumNodes()
	if n != g2.NumNodes() {
		return false
	}
	var a, b []int
	for i := 0; i < n; i++ {
		e1, e2 := g1.Out(i), g2.Out(i)
		if len(e1) != len(e2) {
			return false
		}
		if slices.Equal(e1, e2) {
			continue
		}
		a = append(a[:0], e1...)
		b = append(b[:0], e2...)
		slices.Sort(a)
		slices.Sort(b)
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}
