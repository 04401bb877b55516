// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws random deviates from an STIIHLW distribution by
// inverse transform sampling: each deviate is Quantile(u) for an
// independent u uniform on (0, 1).
//
// A Sampler is not safe for concurrent use because it advances its
// random source.
type Sampler struct {
	dist    STIIHLWDist
	uniform distuv.Uniform
}

// NewSampler returns a Sampler for d drawing from src. If src is nil,
// the sampler uses a source seeded from the current time.
func NewSampler(d STIIHLWDist, src rand.Source) (*Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "sampler")
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UTC().UnixNano()))
	}
	return &Sampler{
		dist:    d,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}, nil
}

// Dist returns the distribution s samples from.
func (s *Sampler) Dist() STIIHLWDist {
	return s.dist
}

// Rand returns one deviate, or NaN if the quantile could not be
// computed for the drawn probability.
func (s *Sampler) Rand() float64 {
	var u float64
	for u == 0 {
		u = s.uniform.Rand()
	}
	return s.dist.InvCDF(u)
}

// Generate returns n independent deviates. A draw whose quantile
// cannot be computed is NaN in the result; the rest of the batch is
// unaffected. Callers should filter or report NaN entries.
func (s *Sampler) Generate(n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "sample size %d, must be at least 1", n)
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.Rand()
	}
	return xs, nil
}

// Generate returns n deviates from d drawn with src. See
// Sampler.Generate.
func Generate(n int, d STIIHLWDist, src rand.Source) ([]float64, error) {
	s, err := NewSampler(d, src)
	if err != nil {
		return nil, err
	}
	return s.Generate(n)
}
