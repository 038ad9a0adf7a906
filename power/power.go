// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package power estimates the power and Type-I error of independence
// tests by Monte Carlo simulation.
//
// Each trial draws a paired sample from a simulation, splits it into
// two groups at the median of y, runs the test, and records whether
// the p-value falls below alpha. The estimated power is the fraction
// of rejecting trials. On a simulation whose x and y are independent
// this fraction estimates the Type-I error rate instead.
package power

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graphstat/indep/sims"
	"github.com/graphstat/indep/stats"
)

var (
	// ErrUnknownTest is returned for test names with no
	// registered statistic.
	ErrUnknownTest = errors.New("unknown test")

	// ErrUnknownSimType is returned for unknown simulation
	// families. It matches sims.ErrUnknownSimulation as well.
	ErrUnknownSimType = fmt.Errorf("%w type", sims.ErrUnknownSimulation)
)

// A Test names an independence test.
type Test int

const (
	FriedmanRafskyTest Test = iota
)

var testNames = map[string]Test{
	"friedmanrafsky": FriedmanRafskyTest,
	"fr":             FriedmanRafskyTest,
}

// ParseTest returns the Test with the given name. Matching ignores
// case, '_' and '-', so "friedmanRafsky" and "friedman_rafsky" both
// name FriedmanRafskyTest.
func ParseTest(name string) (Test, error) {
	if t, ok := testNames[normalize(name)]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTest, name)
}

func (t Test) String() string {
	switch t {
	case FriedmanRafskyTest:
		return "friedman_rafsky"
	}
	return fmt.Sprintf("Test(%d)", int(t))
}

// Statistic returns the statistic computed by t.
func (t Test) Statistic() (stats.Statistic, error) {
	switch t {
	case FriedmanRafskyTest:
		return stats.FriedmanRafsky{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownTest, t)
}

// A SimType is a family of simulations.
type SimType int

const (
	// Indep is the family of paired (x, y) samples used to study
	// tests of independence.
	Indep SimType = iota
)

// ParseSimType returns the SimType with the given name.
func ParseSimType(name string) (SimType, error) {
	switch normalize(name) {
	case "indep", "independence":
		return Indep, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSimType, name)
}

func (s SimType) String() string {
	switch s {
	case Indep:
		return "indep"
	}
	return fmt.Sprintf("SimType(%d)", int(s))
}

// Simulations returns the simulations in family s.
func (s SimType) Simulations() []sims.Simulation {
	switch s {
	case Indep:
		return sims.All()
	}
	return nil
}

func (s SimType) has(sim sims.Simulation) bool {
	for _, x := range s.Simulations() {
		if x == sim {
			return true
		}
	}
	return false
}

func normalize(name string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(name))
}
