// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Every error returned by this package matches exactly one of these
// with errors.Is.
var (
	// ErrInvalidParameter reports a non-positive or non-finite
	// distribution parameter, a probability outside [0, 1], or an
	// unusable observation.
	ErrInvalidParameter = errors.New("stats: invalid parameter")

	// ErrNumericalFailure reports a root that could not be
	// bracketed or an iterative method that did not converge.
	ErrNumericalFailure = errors.New("stats: numerical failure")

	// ErrDegenerateInput reports a sample too small to fit or
	// assess.
	ErrDegenerateInput = errors.New("stats: degenerate input")
)

// minFitSample is the smallest sample Fit and EvaluateFit accept:
// one observation per free parameter.
const minFitSample = numParams

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return errors.Wrapf(ErrInvalidParameter, "%s = %v, must be positive and finite", name, v)
	}
	return nil
}

func checkProb(p float64) error {
	if !(p >= 0 && p <= 1) {
		return errors.Wrapf(ErrInvalidParameter, "probability %v outside [0, 1]", p)
	}
	return nil
}

// checkSample reports whether xs is large enough to fit and contains
// only positive finite observations.
func checkSample(xs []float64) error {
	if len(xs) < minFitSample {
		return errors.Wrapf(ErrDegenerateInput, "%d observations, need at least %d", len(xs), minFitSample)
	}
	for i, x := range xs {
		if !(x > 0) || math.IsInf(x, 1) {
			return errors.Wrapf(ErrInvalidParameter, "observation %d = %v, must be positive and finite", i, x)
		}
	}
	return nil
}
