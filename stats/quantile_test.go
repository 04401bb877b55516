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

func TestQuantileRoundTrip(t *testing.T) {
	ps := []float64{0.001, 0.0011, 0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99, 0.999}
	for _, lambda := range []float64{0.5, 1, 3} {
		for _, k := range []float64{0.5, 1.5, 3} {
			for _, alpha := range []float64{0.2, 1, 3} {
				d := STIIHLWDist{Lambda: lambda, K: k, Alpha: alpha}
				for _, p := range ps {
					x, err := d.Quantile(p)
					require.NoErrorf(t, err, "%s p=%v", distName(d), p)
					require.Truef(t, x > 0 && !math.IsInf(x, 0), "%s: Quantile(%v) = %v", distName(d), p, x)
					assert.InDeltaf(t, p, d.CDF(x), 1e-4, "%s p=%v", distName(d), p)
				}
			}
		}
	}
}

func TestQuantileMonotone(t *testing.T) {
	d := STIIHLWDist{Lambda: 2, K: 0.8, Alpha: 1.7}
	prev := 0.0
	for _, p := range Linspace(0.001, 0.999, 200) {
		x, err := d.Quantile(p)
		require.NoError(t, err)
		require.GreaterOrEqualf(t, x, prev, "Quantile(%v)", p)
		prev = x
	}
}

func TestQuantileBoundaries(t *testing.T) {
	d := STIIHLWDist{Lambda: 1, K: 1.5, Alpha: 1}

	x, err := d.Quantile(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	x, err = d.Quantile(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(x, 1))

	for _, p := range []float64{-0.1, 1.0001, math.NaN(), math.Inf(1)} {
		_, err := d.Quantile(p)
		assert.Truef(t, errors.Is(err, ErrInvalidParameter), "Quantile(%v): %v", p, err)
		assert.True(t, math.IsNaN(d.InvCDF(p)))
	}

	_, err = STIIHLWDist{Lambda: -1, K: 1, Alpha: 1}.Quantile(0.5)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestQuantileLowerTail(t *testing.T) {
	// Small k and α push lower quantiles many orders of magnitude
	// below λ. They must still invert to positive x with CDF(x)
	// matching p in relative terms.
	for _, d := range []STIIHLWDist{
		{Lambda: 0.5, K: 0.5, Alpha: 0.2},
		{Lambda: 1, K: 1, Alpha: 0.1},
		{Lambda: 2, K: 3, Alpha: 0.2},
	} {
		assert.Equal(t, 0.0, d.CDF(0), distName(d))
		for _, p := range []float64{1e-12, 1e-6, 1e-4, 0.0011, 0.05, 0.1} {
			x, err := d.Quantile(p)
			require.NoErrorf(t, err, "%s p=%v", distName(d), p)
			require.Greaterf(t, x, 0.0, "%s: Quantile(%v)", distName(d), p)
			assert.InEpsilonf(t, p, d.CDF(x), 1e-6, "%s p=%v x=%v", distName(d), p, x)
		}
	}
}

func TestQuantileHeavyTail(t *testing.T) {
	// Small k and α put the 0.999 quantile well beyond the base
	// Weibull's bulk; the bracket must still find it.
	d := STIIHLWDist{Lambda: 1, K: 0.3, Alpha: 0.2}
	x, err := d.Quantile(0.999)
	require.NoError(t, err)
	assert.InDelta(t, 0.999, d.CDF(x), 1e-9)
}

func TestMedian(t *testing.T) {
	d := STIIHLWDist{Lambda: 1.3, K: 2, Alpha: 1}
	// With α = 1 the median solves sin(π/2·G(x)) = 1/2, so
	// G(x) = 1/3.
	want := d.Base().InvCDF(1.0 / 3)
	assert.InDelta(t, want, d.Median(), 1e-9)

	got := d.InvCDFEach([]float64{0.5, 0, 2})
	assert.InDelta(t, want, got[0], 1e-9)
	assert.Equal(t, 0.0, got[1])
	assert.True(t, math.IsNaN(got[2]))
}
