// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the sine Type II half-logistic Weibull
// (STIIHLW) distribution family and its reference Weibull
// distribution: density, cumulative, survival and hazard functions,
// quantiles, random deviates, maximum likelihood fitting and
// goodness-of-fit statistics.
//
// All functions are pure and synchronous. Distributions are small
// value types that are safe to copy and to use from multiple
// goroutines.
package stats // import "github.com/stiihlw/stiihlw/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// Numerical boundary policy. These are part of the package contract
// and are exercised directly by tests.
const (
	// densityFloor is the smallest density whose logarithm enters
	// the likelihood objective minimized by Fit.
	densityFloor = 1e-15

	// hazardSFFloor is the survival value at or below which the
	// STIIHLW hazard is reported as 0 instead of pdf/sf.
	hazardSFFloor = 1e-12

	// extremeTail is the upper tail probability of the base Weibull
	// used to size quantile brackets and distribution bounds.
	extremeTail = 1e-10
)
