// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stiihlw/stiihlw/internal/logger"
	"github.com/stiihlw/stiihlw/internal/report"
	"github.com/urfave/cli/v2"
)

// PlotCommand renders curves, or a sample against its fitted density,
// to a file.
var PlotCommand = cli.Command{
	Action: plotAction,
	Name:   "plot",
	Usage:  "render the curves to PNG or HTML",
	Flags: append([]cli.Flag{
		&logger.LogLevelFlag,
		&ConfigFlag,
		&DistFlag,
		&PointsFlag,
		&SpanFlag,
		&OutFlag,
		&DataFlag,
		&ColumnFlag,
		&SheetFlag,
		&BinsFlag,
	}, paramFlags...),
	Description: "Renders pdf, cdf, sf and hazard as a grid of charts. The format follows the extension of --out. " +
		"With --data, fits the sample and renders its histogram under the fitted density instead.",
}

func plotAction(ctx *cli.Context) (err error) {
	cfg, err := readConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Logging.Level, "Plot")

	out := ctx.Path(OutFlag.Name)
	ext := strings.ToLower(filepath.Ext(out))
	if ext != ".png" && ext != ".html" {
		return errors.Newf("unsupported output format %q, want .png or .html", ext)
	}
	dataPath := ctx.Path(DataFlag.Name)
	if dataPath != "" && ext != ".png" {
		return errors.New("--data renders PNG only")
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing output")
		}
	}()

	if dataPath != "" {
		data, err := loadData(ctx, dataPath)
		if err != nil {
			return err
		}
		res, _, err := fitSample(cfg, log, data.Values)
		if err != nil {
			return err
		}
		if err := report.HistogramPNG(f, data.Values, res.Dist, ctx.Int(BinsFlag.Name)); err != nil {
			return err
		}
		log.Noticef("Wrote histogram of %d values to %s", len(data.Values), out)
		return nil
	}

	c, err := evaluatedCurves(ctx, cfg.Grid(ctx.Float64(LambdaFlag.Name)))
	if err != nil {
		return err
	}
	if ext == ".png" {
		err = report.CurvesPNG(f, c)
	} else {
		err = report.CurvesHTML(f, c)
	}
	if err != nil {
		return err
	}
	log.Noticef("Wrote %s curves to %s", c.Title, out)
	return nil
}
