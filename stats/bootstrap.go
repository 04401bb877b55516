// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// BootstrapOptions controls Bootstrap.
type BootstrapOptions struct {
	// Resamples is the number of bootstrap resamples. Default 200.
	Resamples int

	// Confidence is the two-sided confidence level of the
	// percentile intervals. Default 0.95.
	Confidence float64

	// Src is the source of randomness for resampling. If nil, a
	// time-seeded source is used.
	Src rand.Source

	// Fit is passed to every Fit call.
	Fit *FitOptions
}

// Interval is a closed interval [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// BootstrapResult holds percentile confidence intervals for each
// parameter.
type BootstrapResult struct {
	Lambda, K, Alpha Interval
	Confidence       float64

	// Estimates holds the fitted distribution of every resample.
	Estimates []STIIHLWDist

	// NonConverged counts resamples whose fit fell back to the
	// initial guess. They are included in Estimates.
	NonConverged int
}

// Bootstrap refits data resampled with replacement and returns
// percentile intervals for λ, k and α. Resamples run one after
// another; a resample whose optimizer does not converge contributes
// its fallback estimate and is counted in NonConverged.
func Bootstrap(data []float64, opts BootstrapOptions) (BootstrapResult, error) {
	if err := checkSample(data); err != nil {
		return BootstrapResult{}, errors.Wrap(err, "bootstrap")
	}
	if opts.Resamples <= 0 {
		opts.Resamples = 200
	}
	if opts.Confidence == 0 {
		opts.Confidence = 0.95
	}
	if !(opts.Confidence > 0 && opts.Confidence < 1) {
		return BootstrapResult{}, errors.Wrapf(ErrInvalidParameter, "bootstrap: confidence %v outside (0, 1)", opts.Confidence)
	}
	src := opts.Src
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UTC().UnixNano()))
	}
	rnd := rand.New(src)

	res := BootstrapResult{
		Confidence: opts.Confidence,
		Estimates:  make([]STIIHLWDist, 0, opts.Resamples),
	}
	resample := make([]float64, len(data))
	for i := 0; i < opts.Resamples; i++ {
		for j := range resample {
			resample[j] = data[rnd.Intn(len(data))]
		}
		est, err := Fit(resample, opts.Fit)
		if err != nil {
			return BootstrapResult{}, errors.Wrapf(err, "bootstrap resample %d", i)
		}
		if !est.Converged {
			res.NonConverged++
		}
		res.Estimates = append(res.Estimates, est.Dist)
	}

	tail := (1 - opts.Confidence) / 2
	interval := func(get func(STIIHLWDist) float64) Interval {
		xs := make([]float64, len(res.Estimates))
		for i, d := range res.Estimates {
			xs[i] = get(d)
		}
		sort.Float64s(xs)
		return Interval{
			Lo: stat.Quantile(tail, stat.Empirical, xs, nil),
			Hi: stat.Quantile(1-tail, stat.Empirical, xs, nil),
		}
	}
	res.Lambda = interval(func(d STIIHLWDist) float64 { return d.Lambda })
	res.K = interval(func(d STIIHLWDist) float64 { return d.K })
	res.Alpha = interval(func(d STIIHLWDist) float64 { return d.Alpha })
	return res, nil
}
