// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqTol is like aeq with an explicit tolerance. NaN equals NaN and
// infinities must match exactly.
func aeqTol(expect, got, tol float64) bool {
	switch {
	case math.IsNaN(expect) || math.IsNaN(got):
		return math.IsNaN(expect) && math.IsNaN(got)
	case math.IsInf(expect, 0) || math.IsInf(got, 0):
		return expect == got
	}
	return math.Abs(expect-got) <= tol
}

// testFunc checks that f(x) = want for each x, want pair.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeqTol(want, got, 1e-9) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// seeded returns a deterministic random source for tests.
func seeded(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

func distName(d STIIHLWDist) string {
	return fmt.Sprintf("λ=%g,k=%g,α=%g", d.Lambda, d.K, d.Alpha)
}
