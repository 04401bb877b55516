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
	"gonum.org/v1/gonum/stat"
)

func TestSamplerDeterministic(t *testing.T) {
	d := STIIHLWDist{Lambda: 1, K: 1.5, Alpha: 1}
	a, err := Generate(100, d, seeded(7))
	require.NoError(t, err)
	b, err := Generate(100, d, seeded(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(100, d, seeded(8))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSamplerDistribution(t *testing.T) {
	for _, d := range []STIIHLWDist{
		{Lambda: 1, K: 1.5, Alpha: 1},
		{Lambda: 4, K: 0.8, Alpha: 2.5},
	} {
		s, err := NewSampler(d, seeded(3))
		require.NoError(t, err)
		assert.Equal(t, d, s.Dist())

		xs, err := s.Generate(20000)
		require.NoError(t, err)
		for _, x := range xs {
			require.Truef(t, x >= 0 && !math.IsInf(x, 0), "%s: draw %v", distName(d), x)
		}
		assert.InEpsilonf(t, d.Mean(), stat.Mean(xs, nil), 0.03, "%s mean", distName(d))

		fs, err := EvaluateFit(xs, d)
		require.NoError(t, err)
		assert.Lessf(t, fs.KS, KSCritical(fs.N, KS99d9), "%s KS", distName(d))
	}
}

func TestSamplerInvalid(t *testing.T) {
	d := STIIHLWDist{Lambda: 1, K: 1, Alpha: 1}
	for _, n := range []int{0, -5} {
		_, err := Generate(n, d, seeded(1))
		assert.Truef(t, errors.Is(err, ErrInvalidParameter), "Generate(%d): %v", n, err)
	}

	_, err := NewSampler(STIIHLWDist{Lambda: 1, K: 0, Alpha: 1}, nil)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestSamplerUnseeded(t *testing.T) {
	s, err := NewSampler(STIIHLWDist{Lambda: 2, K: 2, Alpha: 2}, nil)
	require.NoError(t, err)
	xs, err := s.Generate(10)
	require.NoError(t, err)
	assert.Len(t, xs, 10)
}

func TestSamplerSmallAlpha(t *testing.T) {
	// Small α puts much of the mass extremely close to 0. Draws must
	// stay strictly positive so the sample can be fitted back.
	for _, d := range []STIIHLWDist{
		{Lambda: 1, K: 1.5, Alpha: 0.1},
		{Lambda: 0.5, K: 0.5, Alpha: 0.2},
	} {
		xs, err := Generate(2000, d, seeded(11))
		require.NoError(t, err)
		for i, x := range xs {
			require.Truef(t, x > 0 && !math.IsInf(x, 0), "%s: draw %d = %v", distName(d), i, x)
		}

		res, err := Fit(xs, nil)
		require.NoErrorf(t, err, "%s", distName(d))
		_, err = EvaluateFit(xs, res.Dist)
		require.NoErrorf(t, err, "%s", distName(d))
	}
}
