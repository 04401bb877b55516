// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/stiihlw/stiihlw/internal/logger"
	"github.com/stiihlw/stiihlw/internal/report"
	"github.com/urfave/cli/v2"
)

// CurvesCommand tabulates the density, distribution, survival and
// hazard functions on a grid.
var CurvesCommand = cli.Command{
	Action: curvesAction,
	Name:   "curves",
	Usage:  "tabulate pdf, cdf, sf and hazard on a grid",
	Flags: append([]cli.Flag{
		&logger.LogLevelFlag,
		&ConfigFlag,
		&DistFlag,
		&PointsFlag,
		&SpanFlag,
	}, paramFlags...),
	Description: "Evaluates every curve of the selected distribution on points evenly spaced from 0.001 to span·λ.",
}

func curvesAction(ctx *cli.Context) error {
	cfg, err := readConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Logging.Level, "Curves")
	c, err := evaluatedCurves(ctx, cfg.Grid(ctx.Float64(LambdaFlag.Name)))
	if err != nil {
		return err
	}
	log.Debugf("Evaluated %s on %d points", c.Title, len(c.X))
	report.WriteCurves(ctx.App.Writer, c)
	return nil
}

// evaluatedCurves evaluates the distribution selected by the flags on
// grid.
func evaluatedCurves(ctx *cli.Context, grid []float64) (*report.Curves, error) {
	d, label, err := distribution(ctx)
	if err != nil {
		return nil, err
	}
	return report.NewCurves(label, d, grid)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
