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

func TestWeibull(t *testing.T) {
	d := WeibullDist{Lambda: 2, K: 1}
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		-1: 0,
		0:  0,
		2:  1 - math.Exp(-1),
		4:  1 - math.Exp(-2),
	})
	testFunc(t, "SF", d.SF, map[float64]float64{
		-1: 1,
		0:  1,
		2:  math.Exp(-1),
	})
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		-1: 0,
		0:  0.5,
		2:  0.5 * math.Exp(-1),
	})
	// The exponential distribution has constant hazard 1/λ.
	testFunc(t, "Hazard", d.Hazard, map[float64]float64{
		0.5: 0.5,
		3:   0.5,
		10:  0.5,
	})
	testFunc(t, "InvCDF", d.InvCDF, map[float64]float64{
		0:                0,
		1:                math.Inf(1),
		1 - math.Exp(-1): 2,
		-0.1:             math.NaN(),
		1.1:              math.NaN(),
	})
}

func TestWeibullRoundTrip(t *testing.T) {
	for _, k := range []float64{0.5, 1, 1.5, 3} {
		d := WeibullDist{Lambda: 1.7, K: k}
		for _, p := range []float64{1e-6, 0.01, 0.3, 0.5, 0.9, 0.999999} {
			x := d.InvCDF(p)
			assert.InDeltaf(t, p, d.CDF(x), 1e-12, "k=%v p=%v", k, p)
		}
	}
}

func TestWeibullMoments(t *testing.T) {
	d := WeibullDist{Lambda: 3, K: 1}
	assert.InDelta(t, 3, d.Mean(), 1e-12)
	assert.InDelta(t, 9, d.Variance(), 1e-12)

	d = WeibullDist{Lambda: 1, K: 2}
	assert.InDelta(t, math.Sqrt(math.Pi)/2, d.Mean(), 1e-12)
	assert.InDelta(t, 1-math.Pi/4, d.Variance(), 1e-12)
}

func TestWeibullInvalid(t *testing.T) {
	for _, d := range []WeibullDist{{0, 1}, {1, -1}, {math.NaN(), 1}, {1, math.Inf(1)}} {
		_, err := NewWeibull(d.Lambda, d.K)
		assert.Truef(t, errors.Is(err, ErrInvalidParameter), "NewWeibull(%v, %v) error %v", d.Lambda, d.K, err)
		assert.True(t, math.IsNaN(d.CDF(1)))
		assert.True(t, math.IsNaN(d.Mean()))

		_, err = d.Evaluate(CurvePDF, []float64{1})
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	}
}

func TestWeibullEvaluate(t *testing.T) {
	d := WeibullDist{Lambda: 1, K: 1.5}
	xs := []float64{0.5, 1, 2}
	for _, c := range Curves {
		got, err := d.Evaluate(c, xs)
		require.NoError(t, err)
		require.Len(t, got, len(xs))
	}
	got, err := d.Evaluate(CurveSF, xs)
	require.NoError(t, err)
	assert.Equal(t, d.SFEach(xs), got)

	_, err = d.Evaluate(Curve(42), xs)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
