// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/floats"

// Linspace returns n evenly spaced points from lo to hi inclusive.
// It panics if n < 2.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// DefaultGrid returns the evaluation grid for curves of a
// distribution with scale lambda: 1000 points from 0.001 to 6λ.
func DefaultGrid(lambda float64) []float64 {
	return Linspace(0.001, 6*lambda, 1000)
}
