// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements numerical helpers not provided by the
// standard library.
package mathx // import "github.com/stiihlw/stiihlw/mathx"

import "math"

var nan = math.NaN()

// Clamp returns x limited to [lo, hi]. NaN is returned unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
