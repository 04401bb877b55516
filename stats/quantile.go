// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/stiihlw/stiihlw/mathx"
)

const (
	// bracketFactor multiplies the base Weibull's extreme quantile
	// to form the initial upper bracket for quantile inversion.
	bracketFactor = 10

	// maxBracketExpansions is how many times the upper bracket may
	// be doubled before quantile inversion gives up.
	maxBracketExpansions = 16

	// quantileRelTol is the root-finder tolerance relative to
	// Lambda, used for the upper tail in Bounds.
	quantileRelTol = 1e-12

	// quantileLogTol is the root-finder tolerance on ln x, and so a
	// relative tolerance on the quantile itself.
	quantileLogTol = 1e-12

	quantileMaxIter = 200
)

// upperBracket returns U = 10·λ·(-ln 1e-10)^(1/k).
func (d STIIHLWDist) upperBracket() float64 {
	return bracketFactor * d.Base().extremeQuantile()
}

// Quantile returns the x for which CDF(x) = p.
//
// Quantile(0) is 0 and Quantile(1) is +Inf. For p in (0, 1), Quantile
// first finds an upper bracket U = 10·λ·(-ln 1e-10)^(1/k), doubling U
// while CDF(U) < p. It then locates the root of CDF(e^t) - p in
// t = ln x with Brent's method, widening the lower end of the bracket
// as needed. Working in ln x keeps the result accurate in relative
// terms, which matters in the lower tail where small k and α put
// quantiles many orders of magnitude below λ. The result for p in
// (0, 1) is always positive. If no sign change can be found or the
// root finder does not converge, Quantile returns NaN and an
// ErrNumericalFailure error.
//
// p outside [0, 1] or invalid parameters yield ErrInvalidParameter.
func (d STIIHLWDist) Quantile(p float64) (float64, error) {
	if err := d.Validate(); err != nil {
		return nan, errors.Wrap(err, "quantile")
	}
	if err := checkProb(p); err != nil {
		return nan, errors.Wrap(err, "quantile")
	}
	if p == 0 {
		return 0, nil
	} else if p == 1 {
		return inf, nil
	}

	fail := func(err error) (float64, error) {
		return nan, errors.Wrapf(errors.Mark(err, ErrNumericalFailure), "quantile(%v) of %+v", p, d)
	}
	f := func(x float64) float64 {
		return d.CDF(x) - p
	}
	hi, err := mathx.ExpandUpper(f, 0, d.upperBracket(), maxBracketExpansions)
	if err != nil {
		return fail(err)
	}
	if f(hi) == 0 {
		return hi, nil
	}

	g := func(t float64) float64 {
		return f(math.Exp(t))
	}
	tHi := math.Log(hi)
	tLo, err := mathx.ExpandLower(g, math.Log(d.Lambda)-1, tHi, maxBracketExpansions)
	if err != nil {
		return fail(err)
	}
	t, err := mathx.Brent(g, tLo, tHi, quantileLogTol, quantileMaxIter)
	if err != nil {
		return fail(err)
	}
	// A root below the smallest float means p is below CDF there.
	return math.Max(math.Exp(t), math.SmallestNonzeroFloat64), nil
}

// InvCDF is Quantile with failures reported as NaN.
func (d STIIHLWDist) InvCDF(y float64) float64 {
	x, err := d.Quantile(y)
	if err != nil {
		return nan
	}
	return x
}

func (d STIIHLWDist) InvCDFEach(ys []float64) []float64 {
	return each(d.InvCDF, ys)
}

// Median returns Quantile(0.5), or NaN if it cannot be located.
func (d STIIHLWDist) Median() float64 {
	return d.InvCDF(0.5)
}

// tailPoint returns the x at which SF(x) = tail. It works on the
// survival function directly, so it stays accurate for tails far
// below the resolution of CDF(x) - p.
func (d STIIHLWDist) tailPoint(tail float64) (float64, error) {
	f := func(x float64) float64 {
		return math.Log(d.SF(x)) - math.Log(tail)
	}
	hi, err := mathx.ExpandUpper(f, 0, d.upperBracket(), maxBracketExpansions)
	if err != nil {
		return nan, errors.Mark(err, ErrNumericalFailure)
	}
	x, err := mathx.Brent(f, 0, hi, quantileRelTol*d.Lambda, quantileMaxIter)
	if err != nil {
		return nan, errors.Mark(err, ErrNumericalFailure)
	}
	return x, nil
}
