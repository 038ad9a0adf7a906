// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphstat/indep/graph/graphout"
	"github.com/graphstat/indep/mst"
)

// palette colors nodes in dot output by label.
var palette = []string{"steelblue", "firebrick", "forestgreen", "darkorange", "purple", "gray40"}

// treeEnv provides the environment for the tree command.
type treeEnv struct {
	root   *rootEnv
	dot    bool
	verify bool
}

// getTreeCmd returns the definition of the tree command.
func getTreeCmd(root *rootEnv) *cobra.Command {
	env := &treeEnv{root: root}
	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the Euclidean minimum spanning tree of labelled rows",
		Long: `
Prints one line per tree edge ("u v length"), followed by the total
length and the number of edges joining different labels. With --dot,
prints the tree as an undirected Graphviz graph with nodes colored by
label.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: env.runTreeCmd,
	}
	cmd.Flags().BoolVar(&env.dot, "dot", false, "write Graphviz dot")
	cmd.Flags().BoolVar(&env.verify, "verify", false, "check the tree is minimal (slow for large inputs)")
	return cmd
}

func (t *treeEnv) runTreeCmd(cmd *cobra.Command, args []string) error {
	x, y, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	tree, err := mst.Euclidean(x)
	if err != nil {
		return err
	}
	if t.verify {
		if err := mst.Verify(x, tree); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if t.dot {
		colors := map[int]string{}
		d := graphout.Dot{
			Name:       "mst",
			Undirected: true,
			Weights:    true,
			NodeAttrs: func(node int) []graphout.DotAttr {
				c, ok := colors[y[node]]
				if !ok {
					c = palette[len(colors)%len(palette)]
					colors[y[node]] = c
				}
				return []graphout.DotAttr{{Name: "color", Val: c}}
			},
			EdgeAttrs: func(node, edge int) []graphout.DotAttr {
				if y[node] != y[tree.Out(node)[edge]] {
					return []graphout.DotAttr{{Name: "style", Val: "dashed"}}
				}
				return nil
			},
		}
		return d.Fprint(tree, w)
	}

	for _, e := range tree.Edges {
		fmt.Fprintf(w, "%d %d %g\n", e.U, e.V, e.Weight)
	}
	fmt.Fprintf(w, "weight %g  cross edges %d\n", tree.Weight(), tree.CrossEdges(y))
	return nil
}
