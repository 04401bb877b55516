// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoBracket is returned when the function values at the ends
	// of an interval do not have opposite signs.
	ErrNoBracket = errors.New("mathx: root is not bracketed")

	// ErrNoConvergence is returned when a root finder exhausts its
	// iteration budget.
	ErrNoConvergence = errors.New("mathx: root finder did not converge")
)

// machEps is the spacing of float64 values around 1.
const machEps = 2.220446049250313e-16

// Brent returns a root of f in [a, b] using Brent's method, which
// combines bisection with secant steps and inverse quadratic
// interpolation. It requires only that f(a) and f(b) have opposite
// signs (or that one of them is zero); no derivative is needed.
//
// The returned x satisfies |x - x*| <= xtol/2 + 2ε|x| for some root
// x*. If maxIter <= 0, a default of 200 iterations is used.
//
// Brent, R. P. (1973) Algorithms for Minimization without
// Derivatives, chapter 4.
func Brent(f func(float64) float64, a, b, xtol float64, maxIter int) (float64, error) {
	if maxIter <= 0 {
		maxIter = 200
	}
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return nan, errors.Wrapf(ErrNoBracket, "f(%g) = %g, f(%g) = %g", a, fa, b, fb)
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return nan, errors.Wrapf(ErrNoBracket, "f(%g) = %g, f(%g) = %g", a, fa, b, fb)
	}

	// b is the current best estimate, a the previous one, and c
	// the contrapoint such that f(b) and f(c) have opposite signs.
	c, fc := b, fb
	d := b - a
	e := d
	for iter := 0; iter < maxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*machEps*math.Abs(b) + xtol/2
		m := (c - b) / 2
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				// Secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// Interpolation is not converging fast
				// enough. Bisect.
				d = m
				e = d
			}
		} else {
			d = m
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return nan, errors.Wrapf(ErrNoConvergence, "f(%g) is NaN", b)
		}
	}
	return b, errors.Wrapf(ErrNoConvergence, "after %d iterations", maxIter)
}

// ExpandUpper grows the upper end of the interval [lo, hi] by
// repeated doubling of its width until f(lo) and f(hi) have opposite
// signs. It returns the new upper end, or ErrNoBracket if no sign
// change is found after maxExpand doublings.
func ExpandUpper(f func(float64) float64, lo, hi float64, maxExpand int) (float64, error) {
	flo := f(lo)
	if math.IsNaN(flo) {
		return nan, errors.Wrapf(ErrNoBracket, "f(%g) is NaN", lo)
	}
	for i := 0; ; i++ {
		fhi := f(hi)
		if math.IsNaN(fhi) {
			return nan, errors.Wrapf(ErrNoBracket, "f(%g) is NaN", hi)
		}
		if flo == 0 || fhi == 0 || (flo > 0) != (fhi > 0) {
			return hi, nil
		}
		if i == maxExpand || math.IsInf(hi, 0) {
			return nan, errors.Wrapf(ErrNoBracket, "no sign change in [%g, %g]", lo, hi)
		}
		hi = lo + 2*(hi-lo)
	}
}

// ExpandLower is ExpandUpper mirrored: it grows the lower end of
// [lo, hi] by doubling the width until f(lo) and f(hi) have opposite
// signs, and returns the new lower end.
func ExpandLower(f func(float64) float64, lo, hi float64, maxExpand int) (float64, error) {
	fhi := f(hi)
	if math.IsNaN(fhi) {
		return nan, errors.Wrapf(ErrNoBracket, "f(%g) is NaN", hi)
	}
	for i := 0; ; i++ {
		flo := f(lo)
		if math.IsNaN(flo) {
			return nan, errors.Wrapf(ErrNoBracket, "f(%g) is NaN", lo)
		}
		if flo == 0 || fhi == 0 || (flo > 0) != (fhi > 0) {
			return lo, nil
		}
		if i == maxExpand || math.IsInf(lo, 0) {
			return nan, errors.Wrapf(ErrNoBracket, "no sign change in [%g, %g]", lo, hi)
		}
		lo = hi - 2*(hi-lo)
	}
}
