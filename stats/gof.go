// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// FitStatistics summarizes how well a distribution describes a
// sample.
type FitStatistics struct {
	// N is the sample size.
	N int

	// KS is the Kolmogorov-Smirnov distance
	// max_i |i/n - F(x_(i))| over the sorted sample.
	KS float64

	// LogLik is Σ log(pdf(xᵢ)), without the density floor used by
	// Fit. It is -Inf if any observation has zero density.
	LogLik float64

	// AIC is 2·3 - 2·LogLik.
	AIC float64

	// BIC is 3·ln(n) - 2·LogLik.
	BIC float64
}

// EvaluateFit computes goodness-of-fit statistics of d for data.
//
// It fails with ErrDegenerateInput for fewer than 3 observations and
// with ErrInvalidParameter if d is invalid or data contains NaN.
func EvaluateFit(data []float64, d STIIHLWDist) (FitStatistics, error) {
	if err := d.Validate(); err != nil {
		return FitStatistics{}, errors.Wrap(err, "evaluate fit")
	}
	if len(data) < minFitSample {
		return FitStatistics{}, errors.Wrapf(ErrDegenerateInput, "evaluate fit: %d observations, need at least %d", len(data), minFitSample)
	}
	for i, x := range data {
		if math.IsNaN(x) {
			return FitStatistics{}, errors.Wrapf(ErrInvalidParameter, "evaluate fit: observation %d is NaN", i)
		}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	var ks, logLik float64
	for i, x := range sorted {
		ecdf := float64(i+1) / n
		if dist := math.Abs(ecdf - d.CDF(x)); dist > ks {
			ks = dist
		}
		logLik += math.Log(d.PDF(x))
	}

	return FitStatistics{
		N:      len(sorted),
		KS:     ks,
		LogLik: logLik,
		AIC:    2*numParams - 2*logLik,
		BIC:    numParams*math.Log(n) - 2*logLik,
	}, nil
}

// KSLevel is a confidence level for the asymptotic one-sample
// Kolmogorov-Smirnov test.
type KSLevel int

const (
	KS90 KSLevel = iota
	KS95
	KS97d5
	KS99
	KS99d5
	KS99d9
)

// ksCoefficients are the asymptotic critical coefficients c(α) such
// that the critical distance is c(α)/√n.
var ksCoefficients = map[KSLevel]float64{
	KS90:   1.22,
	KS95:   1.36,
	KS97d5: 1.48,
	KS99:   1.63,
	KS99d5: 1.73,
	KS99d9: 1.95,
}

func (l KSLevel) String() string {
	switch l {
	case KS90:
		return "90%"
	case KS95:
		return "95%"
	case KS97d5:
		return "97.5%"
	case KS99:
		return "99%"
	case KS99d5:
		return "99.5%"
	case KS99d9:
		return "99.9%"
	}
	return fmt.Sprintf("KSLevel(%d)", int(l))
}

// KSCritical returns the asymptotic critical KS distance for a sample
// of size n at the given level. It panics on an unknown level.
func KSCritical(n int, level KSLevel) float64 {
	coeff, ok := ksCoefficients[level]
	if !ok {
		panic(fmt.Sprintf("unexpected KS level %v", level))
	}
	return coeff / math.Sqrt(float64(n))
}

// Rejects reports whether the KS distance exceeds the critical value
// at the given level, that is, whether the sample is unlikely to come
// from the evaluated distribution.
func (s FitStatistics) Rejects(level KSLevel) bool {
	return s.KS > KSCritical(s.N, level)
}
