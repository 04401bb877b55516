// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"image/color"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/stiihlw/stiihlw/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	pngWidth  = 10 * vg.Inch
	pngHeight = 8 * vg.Inch
)

func xys(pts [][2]float64) plotter.XYs {
	res := make(plotter.XYs, len(pts))
	for i, p := range pts {
		res[i].X, res[i].Y = p[0], p[1]
	}
	return res
}

func curvePlot(c *Curves, curve stats.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = curveTitle(curve)
	p.X.Label.Text = "x"
	p.Y.Label.Text = curveLabel(curve)
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys(c.points(curve)))
	if err != nil {
		return nil, errors.Wrapf(err, "%v line", curve)
	}
	line.Color = color.RGBA{B: 200, A: 255}
	line.Width = vg.Points(1.5)
	p.Add(line)
	return p, nil
}

// CurvesPNG renders the four curves of c as a 2×2 grid of charts in
// PNG format.
func CurvesPNG(w io.Writer, c *Curves) error {
	const rows, cols = 2, 2
	plots := make([][]*plot.Plot, rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, cols)
		for i := range plots[j] {
			p, err := curvePlot(c, stats.Curves[j*cols+i])
			if err != nil {
				return err
			}
			plots[j][i] = p
		}
	}

	img := vgimg.New(pngWidth, pngHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return errors.Wrap(err, "writing PNG")
	}
	return nil
}

// HistogramPNG renders a density-normalized histogram of data with
// the density of d drawn over it.
func HistogramPNG(w io.Writer, data []float64, d stats.STIIHLWDist, bins int) error {
	if len(data) == 0 {
		return errors.New("histogram of empty sample")
	}
	p := plot.New()
	p.Title.Text = "Sample vs fitted STIIHLW density"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"

	hist, err := plotter.NewHist(plotter.Values(data), bins)
	if err != nil {
		return errors.Wrap(err, "histogram")
	}
	hist.Normalize(1)
	hist.FillColor = color.Gray{Y: 200}
	p.Add(hist)

	lo, hi := hist.Bins[0].Min, hist.Bins[len(hist.Bins)-1].Max
	if lo < 0 {
		lo = 0
	}
	fitted, err := NewCurves("fitted", d, stats.Linspace(lo, hi, 400))
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(xys(fitted.points(stats.CurvePDF)))
	if err != nil {
		return errors.Wrap(err, "density line")
	}
	line.Color = color.RGBA{R: 200, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("sample", hist)
	p.Legend.Add("fitted pdf", line)
	p.Legend.Top = true

	wt, err := p.WriterTo(pngWidth, pngHeight*3/4, "png")
	if err != nil {
		return errors.Wrap(err, "rendering plot")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing PNG")
	}
	return nil
}
