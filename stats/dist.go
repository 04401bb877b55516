// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from 0 to x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// InvCDFEach returns InvCDF(ys[i]) for each i.
	InvCDFEach(ys []float64) []float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A LifetimeDist is a Dist supported on [0, ∞) that also describes
// survival behavior.
type LifetimeDist interface {
	Dist

	// SF returns the survival function 1 - CDF(x), the
	// probability of exceeding x.
	SF(x float64) float64

	// SFEach returns SF(xs[i]) for each i.
	SFEach(xs []float64) []float64

	// Hazard returns the instantaneous failure rate PDF(x)/SF(x).
	// Where the survival function vanishes, Hazard returns 0.
	Hazard(x float64) float64

	// HazardEach returns Hazard(xs[i]) for each i.
	HazardEach(xs []float64) []float64
}

// Curve selects one of the functions of a LifetimeDist.
type Curve int

const (
	CurvePDF Curve = iota
	CurveCDF
	CurveSF
	CurveHazard
)

// Curves lists every Curve in display order.
var Curves = []Curve{CurvePDF, CurveCDF, CurveSF, CurveHazard}

func (c Curve) String() string {
	switch c {
	case CurvePDF:
		return "pdf"
	case CurveCDF:
		return "cdf"
	case CurveSF:
		return "sf"
	case CurveHazard:
		return "hazard"
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// ParseCurve returns the Curve named s (pdf, cdf, sf or hazard). It
// also accepts "survival".
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return CurvePDF, nil
	case "cdf":
		return CurveCDF, nil
	case "sf", "survival":
		return CurveSF, nil
	case "hazard":
		return CurveHazard, nil
	}
	return 0, errors.Wrapf(ErrInvalidParameter, "unknown curve %q", s)
}

// evalCurve evaluates curve c of d at each of xs.
func evalCurve(d LifetimeDist, c Curve, xs []float64) ([]float64, error) {
	switch c {
	case CurvePDF:
		return d.PDFEach(xs), nil
	case CurveCDF:
		return d.CDFEach(xs), nil
	case CurveSF:
		return d.SFEach(xs), nil
	case CurveHazard:
		return d.HazardEach(xs), nil
	}
	return nil, errors.Wrapf(ErrInvalidParameter, "unknown curve %v", c)
}

// each returns f(xs[i]) for each i.
func each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
