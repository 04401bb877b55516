// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stiihlw/stiihlw/internal/config"
	"github.com/stiihlw/stiihlw/internal/dataload"
	"github.com/stiihlw/stiihlw/internal/logger"
	"github.com/stiihlw/stiihlw/internal/report"
	"github.com/stiihlw/stiihlw/stats"
	"github.com/urfave/cli/v2"
)

var (
	ConfigFlag = cli.PathFlag{
		Name:  "config",
		Usage: "YAML configuration file",
	}
	DistFlag = cli.StringFlag{
		Name:  "dist",
		Usage: "distribution: weibull or stiihlw",
		Value: "stiihlw",
	}
	LambdaFlag = cli.Float64Flag{
		Name:  "lambda",
		Usage: "scale λ",
		Value: 1,
	}
	KFlag = cli.Float64Flag{
		Name:  "k",
		Usage: "Weibull shape k",
		Value: 1.5,
	}
	AlphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "half-logistic strength α",
		Value: 1,
	}
	PointsFlag = cli.IntFlag{
		Name:  "points",
		Usage: "number of grid points (default from config)",
	}
	SpanFlag = cli.Float64Flag{
		Name:  "span",
		Usage: "grid upper limit as a multiple of λ (default from config)",
	}
	ProbFlag = cli.Float64SliceFlag{
		Name:     "p",
		Usage:    "probability in [0, 1]; may be repeated",
		Required: true,
	}
	NFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of deviates",
		Value: 1000,
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed; 0 seeds from the clock (default from config)",
	}
	BootstrapFlag = cli.IntFlag{
		Name:  "bootstrap",
		Usage: "number of bootstrap resamples for confidence intervals; 0 disables (default from config)",
	}
	ColumnFlag = cli.StringFlag{
		Name:  "column",
		Usage: "header name or 1-based index of the data column; default reads every numeric cell",
	}
	SheetFlag = cli.StringFlag{
		Name:  "sheet",
		Usage: "spreadsheet sheet name; default is the first sheet",
	}
	OutFlag = cli.PathFlag{
		Name:     "out",
		Usage:    "output file, .png or .html",
		Required: true,
	}
	DataFlag = cli.PathFlag{
		Name:  "data",
		Usage: "sample to fit and draw as a histogram under the fitted density (PNG only)",
	}
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "histogram bins",
		Value: 40,
	}
)

var paramFlags = []cli.Flag{&LambdaFlag, &KFlag, &AlphaFlag}

// readConfig loads the configuration and applies flags that override
// it.
func readConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Read(ctx.Path(ConfigFlag.Name))
	if err != nil {
		return nil, err
	}
	if ctx.IsSet(logger.LogLevelFlag.Name) {
		cfg.Logging.Level = strings.ToLower(ctx.String(logger.LogLevelFlag.Name))
	}
	if ctx.IsSet(SeedFlag.Name) {
		cfg.Sample.Seed = ctx.Uint64(SeedFlag.Name)
	}
	if ctx.IsSet(PointsFlag.Name) {
		cfg.Curve.Points = ctx.Int(PointsFlag.Name)
	}
	if ctx.IsSet(SpanFlag.Name) {
		cfg.Curve.Span = ctx.Float64(SpanFlag.Name)
	}
	if ctx.IsSet(BootstrapFlag.Name) {
		cfg.Bootstrap.Resamples = ctx.Int(BootstrapFlag.Name)
		cfg.Bootstrap.Enabled = cfg.Bootstrap.Resamples > 0
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// stiihlwParams returns the distribution given by the parameter flags.
func stiihlwParams(ctx *cli.Context) (stats.STIIHLWDist, error) {
	return stats.NewSTIIHLW(ctx.Float64(LambdaFlag.Name), ctx.Float64(KFlag.Name), ctx.Float64(AlphaFlag.Name))
}

// distribution returns the distribution selected by --dist and a
// label describing it.
func distribution(ctx *cli.Context) (report.Evaluator, string, error) {
	switch strings.ToLower(ctx.String(DistFlag.Name)) {
	case "weibull":
		d, err := stats.NewWeibull(ctx.Float64(LambdaFlag.Name), ctx.Float64(KFlag.Name))
		if err != nil {
			return nil, "", err
		}
		return d, weibullLabel(d), nil
	case "stiihlw", "":
		d, err := stiihlwParams(ctx)
		if err != nil {
			return nil, "", err
		}
		return d, stiihlwLabel(d), nil
	}
	return nil, "", errors.Newf("unknown distribution %q", ctx.String(DistFlag.Name))
}

func weibullLabel(d stats.WeibullDist) string {
	return "Weibull λ=" + ftoa(d.Lambda) + " k=" + ftoa(d.K)
}

func stiihlwLabel(d stats.STIIHLWDist) string {
	return "STIIHLW λ=" + ftoa(d.Lambda) + " k=" + ftoa(d.K) + " α=" + ftoa(d.Alpha)
}

// loadData reads the sample named by the first argument, or stdin.
func loadData(ctx *cli.Context, path string) (*dataload.Data, error) {
	if path == "" {
		path = dataload.Stdin
	}
	return dataload.Load(path, dataload.Options{
		Column: ctx.String(ColumnFlag.Name),
		Sheet:  ctx.String(SheetFlag.Name),
	})
}
