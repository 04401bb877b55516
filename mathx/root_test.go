// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrent(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 0, 2, math.Sqrt2},
		{"cubic", func(x float64) float64 { return x*x*x - x - 2 }, 1, 2, 1.5213797068045676},
		{"cos", math.Cos, 0, 3, math.Pi / 2},
		{"reversed", func(x float64) float64 { return 2 - x*x }, 0, 2, math.Sqrt2},
		{"steep", func(x float64) float64 { return math.Exp(20*x) - 1e6 }, 0, 5, math.Log(1e6) / 20},
		{"rootAtA", func(x float64) float64 { return x }, 0, 1, 0},
		{"rootAtB", func(x float64) float64 { return x - 1 }, 0, 1, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Brent(test.f, test.a, test.b, 1e-12, 0)
			require.NoError(t, err)
			assert.InDeltaf(t, test.want, got, 1e-10, "Brent on [%v, %v]", test.a, test.b)
		})
	}
}

func TestBrentNoBracket(t *testing.T) {
	_, err := Brent(func(x float64) float64 { return x*x + 1 }, -1, 1, 1e-12, 0)
	assert.True(t, errors.Is(err, ErrNoBracket), "want ErrNoBracket, got %v", err)

	_, err = Brent(func(x float64) float64 { return math.NaN() }, -1, 1, 1e-12, 0)
	assert.True(t, errors.Is(err, ErrNoBracket), "want ErrNoBracket, got %v", err)
}

func TestBrentIterationLimit(t *testing.T) {
	_, err := Brent(func(x float64) float64 { return x - 0.3 }, 0, 1e6, 0, 2)
	assert.True(t, errors.Is(err, ErrNoConvergence), "want ErrNoConvergence, got %v", err)
}

func TestExpandUpper(t *testing.T) {
	f := func(x float64) float64 { return x - 100 }
	hi, err := ExpandUpper(f, 0, 1, 16)
	require.NoError(t, err)
	assert.Equal(t, 128.0, hi)

	hi, err = ExpandUpper(f, 0, 200, 16)
	require.NoError(t, err)
	assert.Equal(t, 200.0, hi, "already bracketed")

	_, err = ExpandUpper(f, 0, 1, 3)
	assert.True(t, errors.Is(err, ErrNoBracket), "want ErrNoBracket, got %v", err)
}

func TestExpandLower(t *testing.T) {
	f := func(x float64) float64 { return x + 100 }
	lo, err := ExpandLower(f, -1, 0, 16)
	require.NoError(t, err)
	assert.Equal(t, -128.0, lo)

	lo, err = ExpandLower(f, -200, 0, 16)
	require.NoError(t, err)
	assert.Equal(t, -200.0, lo, "already bracketed")

	_, err = ExpandLower(f, -1, 0, 3)
	assert.True(t, errors.Is(err, ErrNoBracket), "want ErrNoBracket, got %v", err)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.True(t, math.IsNaN(Clamp(math.NaN(), 0, 1)))
}
