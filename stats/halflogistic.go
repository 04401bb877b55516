// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/stiihlw/stiihlw/mathx"
)

// HalfLogisticTransform is the Type II half-logistic odds generator
// with strength Alpha. It maps a base CDF value G in (0, 1) to
//
//	T(G) = G^α / (G^α + (1-G)^α)
//
// which is again in (0, 1), increasing in G, and satisfies
// T(1/2) = 1/2 for every α. With α = 1 it is the identity.
//
// Inputs are clamped to [0, 1]. T(0) = 0 and T(1) = 1 exactly, and
// the derivative is reported as 0 wherever T or 1-T vanishes, so both
// are finite everywhere.
type HalfLogisticTransform struct {
	Alpha float64
}

// Apply returns T(G).
func (t HalfLogisticTransform) Apply(G float64) float64 {
	v, _ := t.pair(G, 1-G)
	return v
}

// Deriv returns dT/dG = α G^(α-1) (1-G)^(α-1) / (G^α + (1-G)^α)².
func (t HalfLogisticTransform) Deriv(G float64) float64 {
	return t.deriv(G, 1-G)
}

// pair returns T(G) and 1-T(G) given G and its complement Gc. Passing
// the complement separately lets callers supply a precisely computed
// survival value instead of 1-G.
//
// T is evaluated as the logistic function of α·ln(G/Gc), which never
// overflows or underflows into 0/0 for large α. G = 0 gives an
// infinite log-odds and so T = 0 without any clamping at the origin.
func (t HalfLogisticTransform) pair(G, Gc float64) (T, Tc float64) {
	G = mathx.Clamp(G, 0, 1)
	Gc = mathx.Clamp(Gc, 0, 1)
	r := t.Alpha * (math.Log(Gc) - math.Log(G))
	if r > 0 {
		e := math.Exp(-r)
		return e / (1 + e), 1 / (1 + e)
	}
	e := math.Exp(r)
	return 1 / (1 + e), e / (1 + e)
}

// deriv returns dT/dG given G and its complement Gc, using the
// identity dT/dG = α·T·(1-T)/(G·(1-G)). Where T or 1-T is 0 the
// derivative is 0; elsewhere G and Gc are both positive.
func (t HalfLogisticTransform) deriv(G, Gc float64) float64 {
	T, Tc := t.pair(G, Gc)
	if T == 0 || Tc == 0 {
		return 0
	}
	return t.Alpha * T * Tc / (mathx.Clamp(G, 0, 1) * mathx.Clamp(Gc, 0, 1))
}
