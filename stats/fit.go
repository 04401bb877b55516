// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// numParams is the number of free parameters of STIIHLWDist.
const numParams = 3

// ParamBounds is the box searched by Fit. Each parameter must lie in
// (Min, Max]. The upper bound of Lambda scales with the data.
type ParamBounds struct {
	// LambdaMin is the exclusive lower bound of Lambda. Fit
	// lowers it to mean(data)/10 for samples with a small mean so
	// that the initial guess is always inside the box.
	LambdaMin float64

	// LambdaMaxFactor bounds Lambda by LambdaMaxFactor·max(data).
	LambdaMaxFactor float64

	KMin, KMax         float64
	AlphaMin, AlphaMax float64
}

// DefaultBounds returns λ ∈ (0.1, 10·max(data)], k ∈ (0.1, 10],
// α ∈ (0.1, 10].
func DefaultBounds() ParamBounds {
	return ParamBounds{
		LambdaMin:       0.1,
		LambdaMaxFactor: 10,
		KMin:            0.1,
		KMax:            10,
		AlphaMin:        0.1,
		AlphaMax:        10,
	}
}

// FitOptions controls Fit. The zero value of each field selects its
// default; a nil *FitOptions selects all defaults.
type FitOptions struct {
	// Bounds is the parameter box. If zero, DefaultBounds is used.
	Bounds ParamBounds

	// MaxIterations caps the optimizer's major iterations.
	// Default 5000.
	MaxIterations int

	// FuncEvaluations caps likelihood evaluations. Default 20000.
	FuncEvaluations int

	// Tolerance is the absolute improvement in negative
	// log-likelihood below which an iteration counts as stalled.
	// Default 1e-9.
	Tolerance float64

	// StallIterations is how many consecutive stalled iterations
	// end the search. Default 200.
	StallIterations int
}

func (o *FitOptions) withDefaults() FitOptions {
	var r FitOptions
	if o != nil {
		r = *o
	}
	if r.Bounds == (ParamBounds{}) {
		r.Bounds = DefaultBounds()
	}
	if r.MaxIterations <= 0 {
		r.MaxIterations = 5000
	}
	if r.FuncEvaluations <= 0 {
		r.FuncEvaluations = 20000
	}
	if r.Tolerance <= 0 {
		r.Tolerance = 1e-9
	}
	if r.StallIterations <= 0 {
		r.StallIterations = 200
	}
	return r
}

// EstimationResult is the outcome of Fit.
//
// Fit never fails once the sample is accepted: if the optimizer does
// not converge, Dist is the initial guess, Converged is false and Err
// holds the cause (matching ErrNumericalFailure). Callers that must
// not silently use the fallback should check Converged.
type EstimationResult struct {
	// Dist holds the fitted parameters, or Initial on fallback.
	Dist STIIHLWDist

	// Initial is the starting point (mean(data), 2, 1).
	Initial STIIHLWDist

	Converged bool
	Status    optimize.Status

	// NegLogLik is the floored negative log-likelihood at Dist.
	NegLogLik float64

	Iterations      int
	FuncEvaluations int

	Err error
}

// Fit estimates (λ, k, α) from data by maximum likelihood.
//
// The objective is -Σ log(max(pdf(xᵢ), 1e-15)); candidates outside
// the parameter box evaluate to +Inf. It is minimized from
// (mean(data), 2, 1) with the derivative-free Nelder-Mead simplex
// method.
//
// Fit fails with ErrDegenerateInput for fewer than 3 observations and
// ErrInvalidParameter for a non-positive or non-finite observation.
// Otherwise it returns a usable result; see EstimationResult for the
// fallback on non-convergence.
func Fit(data []float64, opts *FitOptions) (EstimationResult, error) {
	if err := checkSample(data); err != nil {
		return EstimationResult{}, errors.Wrap(err, "fit")
	}
	o := opts.withDefaults()

	mean := stat.Mean(data, nil)
	b := o.Bounds
	b.LambdaMin = math.Min(b.LambdaMin, mean/10)
	lambdaMax := b.LambdaMaxFactor * floats.Max(data)
	initial := STIIHLWDist{Lambda: mean, K: 2, Alpha: 1}

	// The optimizer works on (λ/λ₀, k, α) so that all three
	// coordinates have comparable scale regardless of the data's
	// units.
	scale := initial.Lambda
	toDist := func(x []float64) STIIHLWDist {
		return STIIHLWDist{Lambda: x[0] * scale, K: x[1], Alpha: x[2]}
	}
	inBox := func(d STIIHLWDist) bool {
		return d.Lambda > b.LambdaMin && d.Lambda <= lambdaMax &&
			d.K > b.KMin && d.K <= b.KMax &&
			d.Alpha > b.AlphaMin && d.Alpha <= b.AlphaMax
	}
	objective := func(x []float64) float64 {
		d := toDist(x)
		if !inBox(d) {
			return inf
		}
		return negLogLik(d, data)
	}

	res := EstimationResult{Initial: initial}
	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		MajorIterations: o.MaxIterations,
		FuncEvaluations: o.FuncEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.Tolerance,
			Relative:   1e-12,
			Iterations: o.StallIterations,
		},
	}
	result, err := optimize.Minimize(problem, []float64{1, initial.K, initial.Alpha}, settings, &optimize.NelderMead{SimplexSize: 0.2})
	if result != nil {
		res.Status = result.Status
		res.Iterations = result.MajorIterations
		res.FuncEvaluations = result.FuncEvaluations
	}
	switch {
	case err != nil:
		res.Err = errors.Mark(err, ErrNumericalFailure)
	case result.Status.Early():
		res.Err = errors.Mark(result.Status.Err(), ErrNumericalFailure)
	case math.IsInf(result.F, 0) || math.IsNaN(result.F) || !inBox(toDist(result.X)):
		res.Err = errors.Wrapf(ErrNumericalFailure, "optimizer ended at %v with objective %v", result.X, result.F)
	}
	if res.Err != nil {
		res.Dist = initial
		res.NegLogLik = negLogLik(initial, data)
		return res, nil
	}
	res.Dist = toDist(result.X)
	res.NegLogLik = result.F
	res.Converged = true
	return res, nil
}

// negLogLik returns -Σ log(pdf(xᵢ)) with each density floored at
// densityFloor.
func negLogLik(d STIIHLWDist, data []float64) float64 {
	var s float64
	for _, x := range data {
		p := d.PDF(x)
		if !(p > densityFloor) {
			p = densityFloor
		}
		s -= math.Log(p)
	}
	return s
}
