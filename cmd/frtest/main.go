// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// frtest runs Friedman-Rafsky independence tests and power studies.
//
//	frtest test [file]       test labelled rows read from file or stdin
//	frtest tree [file]       print the minimum spanning tree of the rows
//	frtest power --sim name  estimate power or Type-I error by simulation
//
// Input rows are whitespace-separated numbers. The last number of
// each row is its integer label; the rest are its coordinates.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// rootEnv holds state shared by every subcommand.
type rootEnv struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	env := &rootEnv{}
	cmd := &cobra.Command{
		Use:   "frtest",
		Short: "Friedman-Rafsky minimum spanning tree tests",
		Long: `
Friedman-Rafsky tests count the edges of the Euclidean minimum spanning
tree that join points with different labels. Few such edges indicate
that the labels are not independent of location.
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: env.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = env.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "log debug output in development format")

	cmd.AddCommand(getTestCmd(env), getTreeCmd(env), getPowerCmd(env))
	return cmd
}

func (r *rootEnv) setup(*cobra.Command, []string) error {
	var err error
	if r.verbose {
		r.logger, err = zap.NewDevelopment()
	} else {
		r.logger, err = zap.NewProduction()
	}
	return err
}
