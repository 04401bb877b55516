// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/op/go-logging"
	"github.com/stiihlw/stiihlw/internal/config"
	"github.com/stiihlw/stiihlw/internal/logger"
	"github.com/stiihlw/stiihlw/internal/report"
	"github.com/stiihlw/stiihlw/stats"
	"github.com/urfave/cli/v2"
)

// FitCommand estimates STIIHLW parameters from a sample.
var FitCommand = cli.Command{
	Action:    fitAction,
	Name:      "fit",
	Usage:     "fit an STIIHLW distribution by maximum likelihood",
	ArgsUsage: "[FILE|-]",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&ConfigFlag,
		&ColumnFlag,
		&SheetFlag,
		&BootstrapFlag,
		&SeedFlag,
	},
	Description: "Reads a sample of positive numbers, estimates λ, k and α, and prints the estimates with KS, AIC and BIC. " +
		"With --bootstrap N, or bootstrap.enabled in the config, also prints percentile confidence intervals from N resamples.",
}

func fitAction(ctx *cli.Context) error {
	cfg, err := readConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Logging.Level, "Fit")
	data, err := loadData(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	log.Infof("Read %d values from %s, dropped %d", len(data.Values), data.Source, data.Dropped)

	res, fs, err := fitSample(cfg, log, data.Values)
	if err != nil {
		return err
	}

	var boot *stats.BootstrapResult
	if cfg.Bootstrap.Enabled && cfg.Bootstrap.Resamples > 0 {
		start := time.Now()
		b, err := stats.Bootstrap(data.Values, cfg.BootstrapOptions(cfg.Source()))
		if err != nil {
			return err
		}
		h, m, s := logger.ParseTime(time.Since(start))
		log.Noticef("Bootstrap of %d resamples took %vh %vm %vs", len(b.Estimates), h, m, s)
		if b.NonConverged > 0 {
			log.Warningf("%d of %d bootstrap fits did not converge and used the initial guess", b.NonConverged, len(b.Estimates))
		}
		boot = &b
	}

	report.WriteFit(ctx.App.Writer, res, fs, boot)
	return nil
}

// fitSample fits data and evaluates the fit, logging a fallback to the
// initial guess.
func fitSample(cfg *config.Config, log *logging.Logger, data []float64) (stats.EstimationResult, stats.FitStatistics, error) {
	res, err := stats.Fit(data, cfg.FitOptions())
	if err != nil {
		return res, stats.FitStatistics{}, err
	}
	if !res.Converged {
		log.Warningf("Optimizer did not converge (%v), using initial guess %s", res.Err, stiihlwLabel(res.Dist))
	} else {
		log.Infof("Fitted %s in %d iterations", stiihlwLabel(res.Dist), res.Iterations)
	}
	fs, err := stats.EvaluateFit(data, res.Dist)
	if err != nil {
		return res, fs, err
	}
	if fs.Rejects(stats.KS95) {
		log.Warningf("KS distance %.4g exceeds the 95%% critical value %.4g", fs.KS, stats.KSCritical(fs.N, stats.KS95))
	}
	return res, fs, nil
}
