// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stiihlw/stiihlw/stats"
)

// convertCurveData converts curve points to chart points.
func convertCurveData(pts [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(pts))
	for _, p := range pts {
		items = append(items, opts.LineData{Value: []float64{p[0], p[1]}})
	}
	return items
}

// newCurveChart creates an interactive line chart of one curve.
func newCurveChart(c *Curves, curve stats.Curve) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "640px",
			Height: "400px",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: opts.Bool(true),
				},
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTitleOpts(opts.Title{
			Title:    curveTitle(curve),
			Subtitle: c.Title,
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: curveLabel(curve)}),
	)
	chart.AddSeries(curveLabel(curve), convertCurveData(c.points(curve))).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	return chart
}

// CurvesHTML renders the four curves of c as a page of interactive
// charts.
func CurvesHTML(w io.Writer, c *Curves) error {
	page := components.NewPage()
	page.SetPageTitle(c.Title)
	for _, curve := range stats.Curves {
		page.AddCharts(newCurveChart(c, curve))
	}
	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "rendering HTML")
	}
	return nil
}
