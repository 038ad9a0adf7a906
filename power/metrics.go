// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports harness progress as Prometheus collectors. A nil
// *Metrics records nothing.
type Metrics struct {
	trials     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	redraws    *prometheus.CounterVec
	pvalues    *prometheus.HistogramVec
}

// NewMetrics creates the harness collectors and registers them with
// reg, or with prometheus.DefaultRegisterer if reg is nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := []string{"test", "sim"}
	m := &Metrics{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "indep",
			Subsystem: "power",
			Name:      "trials_total",
			Help:      "Number of completed simulation trials.",
		}, labels),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "indep",
			Subsystem: "power",
			Name:      "rejections_total",
			Help:      "Number of trials whose p-value fell below alpha.",
		}, labels),
		redraws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "indep",
			Subsystem: "power",
			Name:      "redraws_total",
			Help:      "Number of degenerate datasets that were redrawn.",
		}, labels),
		pvalues: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "indep",
			Subsystem: "power",
			Name:      "pvalue",
			Help:      "Distribution of trial p-values.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 0.75, 1},
		}, []string{"test"}),
	}
	var registered []prometheus.Collector
	for _, c := range []prometheus.Collector{m.trials, m.rejections, m.redraws, m.pvalues} {
		if err := reg.Register(c); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}
			return nil, err
		}
		registered = append(registered, c)
	}
	return m, nil
}

func (m *Metrics) observeTrial(test, sim string, pvalue float64, rejected bool) {
	if m == nil {
		return
	}
	m.trials.WithLabelValues(test, sim).Inc()
	if rejected {
		m.rejections.WithLabelValues(test, sim).Inc()
	}
	m.pvalues.WithLabelValues(test).Observe(pvalue)
}

func (m *Metrics) observeRedraw(test, sim string) {
	if m == nil {
		return
	}
	m.redraws.WithLabelValues(test, sim).Inc()
}
