// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats distributions, fits and samples as text
// tables and charts.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
)

// summaryPercentiles are the percentiles listed by Summarize, with 0
// and 100 standing for the minimum and maximum.
var summaryPercentiles = []int{0, 1, 5, 25, 50, 75, 95, 99, 100}

// Summary describes a sample.
type Summary struct {
	N                int
	Sum, Mean, GMean float64
	StdDev, Variance float64

	// Percentiles holds the value at each of summaryPercentiles.
	Percentiles []Percentile
}

type Percentile struct {
	P     int
	Value float64
}

// Label returns "min", "median", "max" or "N%ile".
func (p Percentile) Label() string {
	switch p.P {
	case 0:
		return "min"
	case 50:
		return "median"
	case 100:
		return "max"
	}
	return fmt.Sprintf("%d%%ile", p.P)
}

// Summarize computes descriptive statistics of xs. The geometric
// mean is NaN unless every value is positive; the standard deviation
// and variance are NaN for fewer than two values.
func Summarize(xs []float64) (*Summary, error) {
	data := stats.Float64Data(xs)
	if data.Len() == 0 {
		return nil, errors.New("summarize: empty sample")
	}
	s := &Summary{N: data.Len(), GMean: math.NaN(), StdDev: math.NaN(), Variance: math.NaN()}

	var err error
	if s.Sum, err = stats.Sum(data); err != nil {
		return nil, errors.Wrap(err, "summarize")
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return nil, errors.Wrap(err, "summarize")
	}
	if lo, _ := stats.Min(data); lo > 0 {
		// exp(mean(log x)) does not overflow the way a product
		// of a large sample does.
		logs := make(stats.Float64Data, len(xs))
		for i, x := range xs {
			logs[i] = math.Log(x)
		}
		lm, _ := stats.Mean(logs)
		s.GMean = math.Exp(lm)
	}
	if data.Len() > 1 {
		s.StdDev, _ = stats.StandardDeviationSample(data)
		s.Variance, _ = stats.SampleVariance(data)
	}

	for _, p := range summaryPercentiles {
		var v float64
		switch p {
		case 0:
			v, err = stats.Min(data)
		case 50:
			v, err = stats.Median(data)
		case 100:
			v, err = stats.Max(data)
		default:
			v, err = stats.Percentile(data, float64(p))
		}
		if err != nil {
			return nil, errors.Wrapf(err, "summarize: percentile %d", p)
		}
		s.Percentiles = append(s.Percentiles, Percentile{P: p, Value: v})
	}
	return s, nil
}

// WriteSummary prints s: a header line with the moments followed by
// one line per percentile.
func WriteSummary(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", s.N, s.Sum, s.Mean)
	if !math.IsNaN(s.GMean) {
		fmt.Fprintf(w, "  gmean %.6g", s.GMean)
	}
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", s.StdDev, s.Variance)
	fmt.Fprintln(w)

	for _, p := range s.Percentiles {
		fmt.Fprintf(w, "%8s %.6g\n", p.Label(), p.Value)
	}
}
