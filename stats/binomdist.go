// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	switch d.P {
	case 0:
		if ki == 0 {
			return 1
		}
		return 0
	case 1:
		if ki == d.N {
			return 1
		}
		return 0
	}
	logChoose := combin.LogGeneralizedBinomial(float64(d.N), float64(ki))
	return math.Exp(logChoose + float64(ki)*math.Log(d.P) + float64(d.N-ki)*math.Log1p(-d.P))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}
	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// BinomialTest returns the two-sided p-value of observing k
// successes in n trials if the success probability is p. It doubles
// the smaller tail.
func BinomialTest(k, n int, p float64) float64 {
	d := BinomialDist{N: n, P: p}
	lower := d.CDF(float64(k))
	upper := 1 - d.CDF(float64(k-1))
	return math.Min(1, 2*math.Min(lower, upper))
}

// BinomialCI returns the Clopper-Pearson interval [1] for the success
// probability after k successes in n trials.
//
// The interval covers the true probability with at least the given
// confidence, which must be in (0, 1).
//
// [1] Clopper, C. J.; Pearson, E. S. (1934). "The use of confidence
// or fiducial limits illustrated in the case of the binomial".
// Biometrika 26 (4): 404-413.
func BinomialCI(k, n int, confidence float64) (lo, hi float64, err error) {
	if n < 1 || k < 0 || k > n {
		return 0, 0, fmt.Errorf("%w: %d successes in %d trials", ErrInvalidConfig, k, n)
	}
	if !(confidence > 0 && confidence < 1) {
		return 0, 0, fmt.Errorf("%w: confidence %v not in (0, 1)", ErrInvalidConfig, confidence)
	}
	alpha := 1 - confidence
	lo, hi = 0, 1
	if k > 0 {
		lo = distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}.Quantile(alpha / 2)
	}
	if k < n {
		hi = distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}.Quantile(1 - alpha/2)
	}
	return lo, hi, nil
}
