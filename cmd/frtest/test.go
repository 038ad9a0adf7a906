// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/graphstat/indep/stats"
)

// testEnv provides the environment for the test command.
type testEnv struct {
	root    *rootEnv
	reps    int
	seed    uint64
	auto    bool
	workers int
}

// getTestCmd returns the definition of the test command.
func getTestCmd(root *rootEnv) *cobra.Command {
	env := &testEnv{root: root}
	cmd := &cobra.Command{
		Use:   "test [file]",
		Short: "Run a Friedman-Rafsky permutation test on labelled rows",
		Args:  cobra.MaximumNArgs(1),
		RunE:  env.runTestCmd,
	}
	cmd.Flags().IntVar(&env.reps, "reps", stats.DefaultReps, "number of random relabellings")
	cmd.Flags().Uint64Var(&env.seed, "seed", 0, "root seed (default: random)")
	cmd.Flags().BoolVar(&env.auto, "auto", false, "use the normal approximation for two groups")
	cmd.Flags().IntVar(&env.workers, "workers", 0, "goroutines evaluating relabellings (default: GOMAXPROCS)")
	return cmd
}

func (t *testEnv) runTestCmd(cmd *cobra.Command, args []string) error {
	x, y, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	opts := []stats.Option{
		stats.WithReps(t.reps),
		stats.WithAuto(t.auto),
		stats.WithWorkers(t.workers),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, stats.WithSeed(t.seed))
	}
	rows, dims := x.Dims()
	t.root.logger.Debug("running test",
		zap.Int("rows", rows),
		zap.Int("dims", dims),
		zap.Int("groups", stats.Groups(y)))

	res, err := stats.FriedmanRafsky{}.Test(x, y, opts...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "N %d  groups %d  statistic %g  p-value %.6g\n", rows, stats.Groups(y), res.Statistic, res.PValue)
	if res.Auto {
		fmt.Fprintf(w, "normal approximation  seed %d\n", res.Seed)
		return nil
	}
	fmt.Fprintf(w, "reps %d  seed %d\n", res.Reps, res.Seed)

	null := append([]float64(nil), res.Null...)
	sort.Float64s(null)
	mean, std := stat.MeanStdDev(null, nil)
	fmt.Fprintf(w, "null mean %.6g  std dev %.6g\n", mean, std)
	fmt.Fprintln(w)

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 50, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %g\n", label, stat.Quantile(float64(p)/100, stat.Empirical, null, nil))
	}
	return nil
}
