// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// WeibullDist is the two-parameter Weibull distribution with scale
// Lambda and shape K, supported on [0, ∞):
//
//	CDF(x) = 1 - exp(-(x/λ)^k)
//
// It is the base distribution of STIIHLWDist. Methods return NaN if
// Lambda or K is not positive; use Validate or NewWeibull to get an
// error instead.
type WeibullDist struct {
	Lambda, K float64
}

// NewWeibull returns the Weibull distribution with scale lambda and
// shape k, or an ErrInvalidParameter error.
func NewWeibull(lambda, k float64) (WeibullDist, error) {
	d := WeibullDist{Lambda: lambda, K: k}
	return d, d.Validate()
}

// Validate returns an ErrInvalidParameter error unless Lambda and K
// are positive and finite.
func (d WeibullDist) Validate() error {
	if err := checkPositive("lambda", d.Lambda); err != nil {
		return err
	}
	return checkPositive("k", d.K)
}

func (d WeibullDist) valid() bool {
	return d.Validate() == nil
}

// cumHazard returns (x/λ)^k, the cumulative hazard. Negative x is
// clamped to 0 before the power so that x/λ never goes negative.
func (d WeibullDist) cumHazard(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x/d.Lambda, d.K)
}

func (d WeibullDist) PDF(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}
	z := x / d.Lambda
	return d.K / d.Lambda * math.Pow(z, d.K-1) * math.Exp(-math.Pow(z, d.K))
}

func (d WeibullDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d WeibullDist) CDF(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return nan
	}
	return -math.Expm1(-d.cumHazard(x))
}

func (d WeibullDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

// SF is computed directly as exp(-(x/λ)^k) rather than 1-CDF(x) so
// it keeps full precision in the upper tail.
func (d WeibullDist) SF(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return nan
	}
	return math.Exp(-d.cumHazard(x))
}

func (d WeibullDist) SFEach(xs []float64) []float64 {
	return each(d.SF, xs)
}

// Hazard returns PDF(x)/SF(x), or 0 where SF(x) underflows to 0.
func (d WeibullDist) Hazard(x float64) float64 {
	sf := d.SF(x)
	if math.IsNaN(sf) {
		return nan
	}
	if sf == 0 {
		return 0
	}
	return d.PDF(x) / sf
}

func (d WeibullDist) HazardEach(xs []float64) []float64 {
	return each(d.Hazard, xs)
}

// InvCDF returns λ(-ln(1-y))^(1/k). It returns 0 for y = 0, +Inf for
// y = 1 and NaN for y outside [0, 1].
func (d WeibullDist) InvCDF(y float64) float64 {
	if !d.valid() || checkProb(y) != nil {
		return nan
	}
	if y == 0 {
		return 0
	} else if y == 1 {
		return inf
	}
	return d.Lambda * math.Pow(-math.Log1p(-y), 1/d.K)
}

func (d WeibullDist) InvCDFEach(ys []float64) []float64 {
	return each(d.InvCDF, ys)
}

// extremeQuantile returns the quantile of upper tail probability
// extremeTail, λ(-ln 1e-10)^(1/k).
func (d WeibullDist) extremeQuantile() float64 {
	return d.Lambda * math.Pow(-math.Log(extremeTail), 1/d.K)
}

func (d WeibullDist) Bounds() (float64, float64) {
	return 0, d.extremeQuantile()
}

// Mean returns λΓ(1+1/k).
func (d WeibullDist) Mean() float64 {
	if !d.valid() {
		return nan
	}
	return d.Lambda * math.Gamma(1+1/d.K)
}

// Variance returns λ²(Γ(1+2/k) - Γ(1+1/k)²).
func (d WeibullDist) Variance() float64 {
	if !d.valid() {
		return nan
	}
	g1 := math.Gamma(1 + 1/d.K)
	return d.Lambda * d.Lambda * (math.Gamma(1+2/d.K) - g1*g1)
}

// Evaluate returns curve c of d at each of xs, aligned with xs. It
// fails with ErrInvalidParameter if d is not a valid distribution.
func (d WeibullDist) Evaluate(c Curve, xs []float64) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "weibull")
	}
	return evalCurve(d, c, xs)
}
