// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stiihlw/stiihlw/internal/logger"
	"github.com/stiihlw/stiihlw/stats"
	"github.com/urfave/cli/v2"
)

// QuantileCommand prints quantiles of the selected distribution.
var QuantileCommand = cli.Command{
	Action: quantileAction,
	Name:   "quantile",
	Usage:  "print the quantile for each probability",
	Flags: append([]cli.Flag{
		&logger.LogLevelFlag,
		&ConfigFlag,
		&DistFlag,
		&ProbFlag,
	}, paramFlags...),
	Description: "Prints one \"p x\" line per --p. A quantile that cannot be located prints as NaN.",
}

func quantileAction(ctx *cli.Context) error {
	cfg, err := readConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Logging.Level, "Quantile")

	var quantile func(p float64) (float64, error)
	if strings.EqualFold(ctx.String(DistFlag.Name), "weibull") {
		d, err := stats.NewWeibull(ctx.Float64(LambdaFlag.Name), ctx.Float64(KFlag.Name))
		if err != nil {
			return err
		}
		quantile = func(p float64) (float64, error) {
			if !(p >= 0 && p <= 1) {
				return 0, errors.Wrapf(stats.ErrInvalidParameter, "probability %v outside [0, 1]", p)
			}
			return d.InvCDF(p), nil
		}
	} else {
		d, err := stiihlwParams(ctx)
		if err != nil {
			return err
		}
		quantile = d.Quantile
	}

	for _, p := range ctx.Float64Slice(ProbFlag.Name) {
		x, err := quantile(p)
		if err != nil {
			log.Warningf("Quantile(%v): %v", p, err)
			x = math.NaN()
		}
		fmt.Fprintf(ctx.App.Writer, "%v %s\n", p, ftoa(x))
	}
	return nil
}
