// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/stiihlw/stiihlw/internal/logger"
	"github.com/stiihlw/stiihlw/stats"
	"github.com/urfave/cli/v2"
)

// SampleCommand draws random deviates from an STIIHLW distribution.
var SampleCommand = cli.Command{
	Action: sampleAction,
	Name:   "sample",
	Usage:  "draw random deviates, one per line",
	Flags: append([]cli.Flag{
		&logger.LogLevelFlag,
		&ConfigFlag,
		&NFlag,
		&SeedFlag,
	}, paramFlags...),
	Description: "Draws deviates by inverse transform sampling. Draws whose quantile cannot be located print as NaN.",
}

func sampleAction(ctx *cli.Context) error {
	cfg, err := readConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Logging.Level, "Sample")
	d, err := stiihlwParams(ctx)
	if err != nil {
		return err
	}

	xs, err := stats.Generate(ctx.Int(NFlag.Name), d, cfg.Source())
	if err != nil {
		return err
	}
	nan := 0
	w := bufio.NewWriter(ctx.App.Writer)
	for _, x := range xs {
		if math.IsNaN(x) {
			nan++
		}
		if _, err := w.WriteString(ftoa(x) + "\n"); err != nil {
			return errors.Wrap(err, "writing sample")
		}
	}
	if nan > 0 {
		log.Warningf("%d of %d draws failed and are NaN", nan, len(xs))
	}
	log.Infof("Drew %d deviates from %s", len(xs), stiihlwLabel(d))
	return errors.Wrap(w.Flush(), "writing sample")
}
