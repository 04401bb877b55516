// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stiihlw/stiihlw/stats"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle("%s", title)
	}
	return t
}

func g(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

// WriteCurves prints one row per grid point with every curve as a
// column.
func WriteCurves(w io.Writer, c *Curves) {
	t := newTable(w, c.Title)
	header := table.Row{"x"}
	for _, curve := range stats.Curves {
		header = append(header, curve.String())
	}
	t.AppendHeader(header)
	for i, x := range c.X {
		row := table.Row{g(x)}
		for _, curve := range stats.Curves {
			row = append(row, g(c.Y[curve][i]))
		}
		t.AppendRow(row)
	}
	t.Render()
}

// WriteFit prints the estimated parameters, the optimizer outcome,
// the goodness-of-fit statistics and, if boot is not nil, bootstrap
// intervals.
func WriteFit(w io.Writer, res stats.EstimationResult, fs stats.FitStatistics, boot *stats.BootstrapResult) {
	t := newTable(w, "STIIHLW maximum likelihood fit")
	header := table.Row{"parameter", "estimate", "initial"}
	if boot != nil {
		header = append(header, fmt.Sprintf("%g%% lo", 100*boot.Confidence), fmt.Sprintf("%g%% hi", 100*boot.Confidence))
	}
	t.AppendHeader(header)
	params := []struct {
		name      string
		est, init float64
		iv        func(*stats.BootstrapResult) stats.Interval
	}{
		{"λ", res.Dist.Lambda, res.Initial.Lambda, func(b *stats.BootstrapResult) stats.Interval { return b.Lambda }},
		{"k", res.Dist.K, res.Initial.K, func(b *stats.BootstrapResult) stats.Interval { return b.K }},
		{"α", res.Dist.Alpha, res.Initial.Alpha, func(b *stats.BootstrapResult) stats.Interval { return b.Alpha }},
	}
	for _, p := range params {
		row := table.Row{p.name, g(p.est), g(p.init)}
		if boot != nil {
			iv := p.iv(boot)
			row = append(row, g(iv.Lo), g(iv.Hi))
		}
		t.AppendRow(row)
	}
	t.Render()

	t = newTable(w, "")
	t.AppendRow(table.Row{"converged", res.Converged})
	t.AppendRow(table.Row{"status", res.Status})
	t.AppendRow(table.Row{"iterations", res.Iterations})
	t.AppendRow(table.Row{"evaluations", res.FuncEvaluations})
	t.AppendSeparator()
	t.AppendRow(table.Row{"n", fs.N})
	t.AppendRow(table.Row{"log-likelihood", g(fs.LogLik)})
	t.AppendRow(table.Row{"AIC", g(fs.AIC)})
	t.AppendRow(table.Row{"BIC", g(fs.BIC)})
	t.AppendRow(table.Row{"KS", g(fs.KS)})
	t.AppendRow(table.Row{"KS 95% critical", g(stats.KSCritical(fs.N, stats.KS95))})
	if boot != nil {
		t.AppendRow(table.Row{"bootstrap resamples", len(boot.Estimates)})
		t.AppendRow(table.Row{"non-converged resamples", boot.NonConverged})
	}
	t.Render()
}
