// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// STIIHLWDist is the sine Type II half-logistic Weibull distribution
// with scale Lambda, Weibull shape K and half-logistic strength
// Alpha. Its CDF composes the Weibull CDF G, the half-logistic
// transform T and a sine link:
//
//	F(x) = sin(π/2 · T(G(x)))
//
// and its density follows by the chain rule,
//
//	f(x) = π/2 · cos(π/2 · T(G(x))) · T'(G(x)) · g(x).
//
// Methods return NaN if any parameter is not positive; use Validate
// or NewSTIIHLW to get an error instead.
type STIIHLWDist struct {
	Lambda, K, Alpha float64
}

// NewSTIIHLW returns the STIIHLW distribution with the given
// parameters, or an ErrInvalidParameter error.
func NewSTIIHLW(lambda, k, alpha float64) (STIIHLWDist, error) {
	d := STIIHLWDist{Lambda: lambda, K: k, Alpha: alpha}
	return d, d.Validate()
}

// Validate returns an ErrInvalidParameter error unless Lambda, K and
// Alpha are all positive and finite.
func (d STIIHLWDist) Validate() error {
	if err := d.Base().Validate(); err != nil {
		return err
	}
	return checkPositive("alpha", d.Alpha)
}

func (d STIIHLWDist) valid() bool {
	return d.Validate() == nil
}

// Base returns the underlying Weibull distribution.
func (d STIIHLWDist) Base() WeibullDist {
	return WeibullDist{Lambda: d.Lambda, K: d.K}
}

// Transform returns the half-logistic transform applied to the base
// CDF.
func (d STIIHLWDist) Transform() HalfLogisticTransform {
	return HalfLogisticTransform{Alpha: d.Alpha}
}

// transformed returns T(G(x)) and 1-T(G(x)). The complement is
// computed from the Weibull survival function, not by subtraction.
func (d STIIHLWDist) transformed(x float64) (T, Tc float64) {
	base := d.Base()
	return d.Transform().pair(base.CDF(x), base.SF(x))
}

func (d STIIHLWDist) PDF(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}
	if x == 0 {
		return d.pdfOrigin()
	}
	base := d.Base()
	G, Gc := base.CDF(x), base.SF(x)
	_, Tc := d.Transform().pair(G, Gc)
	dT := d.Transform().deriv(G, Gc)
	if dT == 0 {
		return 0
	}
	// cos(π/2·T) = sin(π/2·(1-T)), which is non-negative for
	// T in [0, 1] and accurate as T approaches 1.
	return math.Pi / 2 * math.Sin(math.Pi/2*Tc) * dT * base.PDF(x)
}

// pdfOrigin returns the limit of PDF(x) as x → 0⁺. Near the origin
// CDF(x) ≈ π/2·(x/λ)^(kα), so the density diverges for kα < 1, is
// π/(2λ) for kα = 1, and vanishes otherwise.
func (d STIIHLWDist) pdfOrigin() float64 {
	switch ka := d.K * d.Alpha; {
	case ka < 1:
		return inf
	case ka == 1:
		return math.Pi / (2 * d.Lambda)
	}
	return 0
}

func (d STIIHLWDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d STIIHLWDist) CDF(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}
	T, _ := d.transformed(x)
	return math.Sin(math.Pi / 2 * T)
}

func (d STIIHLWDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

// SF returns 1 - CDF(x), evaluated as 2·sin²(π/4·(1-T)) so that it
// keeps relative precision where CDF(x) rounds to 1.
func (d STIIHLWDist) SF(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 1
	}
	_, Tc := d.transformed(x)
	s := math.Sin(math.Pi / 4 * Tc)
	return 2 * s * s
}

func (d STIIHLWDist) SFEach(xs []float64) []float64 {
	return each(d.SF, xs)
}

// Hazard returns PDF(x)/SF(x), or 0 where SF(x) <= 1e-12.
func (d STIIHLWDist) Hazard(x float64) float64 {
	sf := d.SF(x)
	if math.IsNaN(sf) {
		return nan
	}
	if sf <= hazardSFFloor {
		return 0
	}
	return d.PDF(x) / sf
}

func (d STIIHLWDist) HazardEach(xs []float64) []float64 {
	return each(d.Hazard, xs)
}

// Bounds returns 0 and the point whose survival probability is
// 1e-10. If that point cannot be located, the upper bound is the
// initial quantile bracket.
func (d STIIHLWDist) Bounds() (float64, float64) {
	if !d.valid() {
		return nan, nan
	}
	hi, err := d.tailPoint(extremeTail)
	if err != nil {
		return 0, d.upperBracket()
	}
	return 0, hi
}

// Evaluate returns curve c of d at each of xs, aligned with xs. It
// fails with ErrInvalidParameter if d is not a valid distribution.
func (d STIIHLWDist) Evaluate(c Curve, xs []float64) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "stiihlw")
	}
	return evalCurve(d, c, xs)
}
