// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/stiihlw/stiihlw/stats"
)

// Evaluator is a distribution that can evaluate its curves on a
// grid, such as stats.WeibullDist or stats.STIIHLWDist.
type Evaluator interface {
	Evaluate(c stats.Curve, xs []float64) ([]float64, error)
}

// Curves holds every curve of a distribution on a common grid.
type Curves struct {
	Title string
	X     []float64
	Y     map[stats.Curve][]float64
}

// NewCurves evaluates each of stats.Curves of d at xs.
func NewCurves(title string, d Evaluator, xs []float64) (*Curves, error) {
	c := &Curves{Title: title, X: xs, Y: make(map[stats.Curve][]float64, len(stats.Curves))}
	for _, curve := range stats.Curves {
		ys, err := d.Evaluate(curve, xs)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating %v", curve)
		}
		c.Y[curve] = ys
	}
	return c, nil
}

// curveTitle and curveLabel name the chart and the vertical axis of
// each curve.
func curveTitle(c stats.Curve) string {
	switch c {
	case stats.CurvePDF:
		return "Probability Density Function"
	case stats.CurveCDF:
		return "Cumulative Distribution Function"
	case stats.CurveSF:
		return "Survival Function"
	case stats.CurveHazard:
		return "Hazard Function"
	}
	return c.String()
}

func curveLabel(c stats.Curve) string {
	switch c {
	case stats.CurvePDF:
		return "f(x)"
	case stats.CurveCDF:
		return "F(x)"
	case stats.CurveSF:
		return "S(x)"
	case stats.CurveHazard:
		return "h(x)"
	}
	return c.String()
}

// points returns the (x, y) pairs of curve c with finite y.
func (c *Curves) points(curve stats.Curve) [][2]float64 {
	ys := c.Y[curve]
	pts := make([][2]float64, 0, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, [2]float64{c.X[i], y})
	}
	return pts
}

var (
	_ Evaluator = stats.WeibullDist{}
	_ Evaluator = stats.STIIHLWDist{}
)
