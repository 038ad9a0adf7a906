// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graphstat/indep/power"
)

// powerEnv provides the environment for the power command.
type powerEnv struct {
	root        *rootEnv
	test        string
	simType     string
	sim         string
	n, p        int
	alpha       float64
	auto        bool
	cfg         power.Config
	metricsAddr string
}

// getPowerCmd returns the definition of the power command.
func getPowerCmd(root *rootEnv) *cobra.Command {
	env := &powerEnv{root: root, cfg: power.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Estimate power or Type-I error by simulation",
		Long: `
Draws --trials datasets from the named simulation, labels each by a
median split of y, and reports the fraction of tests that reject at
--alpha, with a confidence interval. On an independent simulation
such as multimodal_independence, this is the Type-I error rate.
`,
		Args: cobra.NoArgs,
		RunE: env.runPowerCmd,
	}
	f := cmd.Flags()
	f.StringVar(&env.test, "test", "friedmanRafsky", "test name")
	f.StringVar(&env.simType, "sim-type", "indep", "simulation family")
	f.StringVar(&env.sim, "sim", "", "simulation name")
	f.IntVarP(&env.n, "n", "n", 100, "observations per trial")
	f.IntVarP(&env.p, "p", "p", 1, "dimension of x")
	f.Float64Var(&env.alpha, "alpha", 0.05, "rejection level")
	f.BoolVar(&env.auto, "auto", false, "use the test's fast approximation")
	f.IntVar(&env.cfg.Trials, "trials", env.cfg.Trials, "number of simulated datasets")
	f.IntVar(&env.cfg.Reps, "reps", env.cfg.Reps, "relabellings per test")
	f.Uint64Var(&env.cfg.Seed, "seed", 0, "root seed (default: random)")
	f.IntVar(&env.cfg.Workers, "workers", env.cfg.Workers, "trials run concurrently")
	f.IntVar(&env.cfg.MaxRedraws, "max-redraws", env.cfg.MaxRedraws, "redraws allowed per degenerate trial")
	f.Float64Var(&env.cfg.Confidence, "confidence", env.cfg.Confidence, "confidence level of the interval")
	f.StringVar(&env.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	must(cmd.MarkFlagRequired("sim"))
	return cmd
}

func (e *powerEnv) runPowerCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := e.cfg
	cfg.Logger = e.root.logger

	if e.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		m, err := power.NewMetrics(reg)
		if err != nil {
			return err
		}
		cfg.Metrics = m
		stop := serveMetrics(e.metricsAddr, reg, e.root.logger)
		defer stop()
	}

	run, err := power.NewRun(e.test, e.simType, e.sim, e.n, e.p, e.alpha, e.auto)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := power.Estimate(ctx, run, cfg)
	if err != nil {
		return err
	}

	kind := "power"
	if res.Null {
		kind = "type I error"
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %.4f  [%.4f, %.4f] at %g%%\n", kind, res.Rate, res.Lo, res.Hi, 100*cfg.Confidence)
	fmt.Fprintf(w, "trials %d  rejections %d  redraws %d  seed %d  elapsed %v\n",
		res.Trials, res.Rejections, res.Redraws, res.Seed, time.Since(start).Round(time.Millisecond))
	return nil
}

// serveMetrics serves reg on addr until the returned function is
// called.
func serveMetrics(addr string, reg *prometheus.Registry, log *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.String("addr", addr), zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("addr", addr))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
