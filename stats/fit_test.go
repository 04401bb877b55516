// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitRecovery(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	truth := STIIHLWDist{Lambda: 1, K: 1.5, Alpha: 1}
	data, err := Generate(5000, truth, seeded(42))
	require.NoError(t, err)

	res, err := Fit(data, nil)
	require.NoError(t, err)
	require.Truef(t, res.Converged, "fit did not converge: %v", res.Err)
	assert.NoError(t, res.Err)
	assert.InEpsilon(t, truth.Lambda, res.Dist.Lambda, 0.15)
	assert.InEpsilon(t, truth.K, res.Dist.K, 0.15)
	assert.InEpsilon(t, truth.Alpha, res.Dist.Alpha, 0.15)

	// The optimum is no worse than the truth or the starting point.
	assert.LessOrEqual(t, res.NegLogLik, negLogLik(truth, data)+1e-6)
	assert.LessOrEqual(t, res.NegLogLik, negLogLik(res.Initial, data))
	assert.Greater(t, res.Iterations, 0)
}

func TestFitInitialGuess(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	res, err := Fit(data, &FitOptions{FuncEvaluations: 5})
	require.NoError(t, err)
	assert.Equal(t, STIIHLWDist{Lambda: 3, K: 2, Alpha: 1}, res.Initial)
}

func TestFitFallback(t *testing.T) {
	data, err := Generate(200, STIIHLWDist{Lambda: 2, K: 1.2, Alpha: 0.8}, seeded(9))
	require.NoError(t, err)

	res, err := Fit(data, &FitOptions{FuncEvaluations: 5})
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.True(t, res.Status.Early())
	assert.True(t, errors.Is(res.Err, ErrNumericalFailure))
	assert.Equal(t, res.Initial, res.Dist)
	assert.InDelta(t, negLogLik(res.Initial, data), res.NegLogLik, 1e-9)
}

func TestFitBounds(t *testing.T) {
	data, err := Generate(300, STIIHLWDist{Lambda: 50, K: 6, Alpha: 1}, seeded(11))
	require.NoError(t, err)

	b := DefaultBounds()
	b.KMax = 3
	res, err := Fit(data, &FitOptions{Bounds: b})
	require.NoError(t, err)
	require.True(t, res.Converged, res.Err)
	assert.LessOrEqual(t, res.Dist.K, 3.0)
	assert.Greater(t, res.Dist.Alpha, b.AlphaMin)
	assert.LessOrEqual(t, res.Dist.Alpha, b.AlphaMax)
}

func TestFitSmallScale(t *testing.T) {
	// Data with mean below the default λ lower bound of 0.1 must
	// still be fittable from its initial guess.
	truth := STIIHLWDist{Lambda: 0.01, K: 2, Alpha: 1.5}
	data, err := Generate(1000, truth, seeded(5))
	require.NoError(t, err)

	res, err := Fit(data, nil)
	require.NoError(t, err)
	require.True(t, res.Converged, res.Err)
	assert.InEpsilon(t, truth.Lambda, res.Dist.Lambda, 0.25)
}

func TestFitInvalid(t *testing.T) {
	for _, data := range [][]float64{nil, {}, {1}, {1, 2}} {
		_, err := Fit(data, nil)
		assert.Truef(t, errors.Is(err, ErrDegenerateInput), "Fit(%v): %v", data, err)
	}
	for _, data := range [][]float64{
		{1, 2, 0},
		{1, -2, 3},
		{1, 2, math.NaN()},
		{1, 2, math.Inf(1)},
	} {
		_, err := Fit(data, nil)
		assert.Truef(t, errors.Is(err, ErrInvalidParameter), "Fit(%v): %v", data, err)
	}
}

func TestFitOptionsDefaults(t *testing.T) {
	var nilOpts *FitOptions
	o := nilOpts.withDefaults()
	assert.Equal(t, DefaultBounds(), o.Bounds)
	assert.Equal(t, 5000, o.MaxIterations)
	assert.Equal(t, 20000, o.FuncEvaluations)
	assert.Equal(t, 1e-9, o.Tolerance)
	assert.Equal(t, 200, o.StallIterations)

	o = (&FitOptions{MaxIterations: 10}).withDefaults()
	assert.Equal(t, 10, o.MaxIterations)
	assert.Equal(t, 20000, o.FuncEvaluations)
}

func TestNegLogLikFloor(t *testing.T) {
	d := STIIHLWDist{Lambda: 1, K: 2, Alpha: 1}
	// Far in the tail the density underflows and is floored.
	got := negLogLik(d, []float64{100})
	assert.InDelta(t, -math.Log(densityFloor), got, 1e-9)
}
