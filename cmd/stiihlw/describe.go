// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/stiihlw/stiihlw/internal/logger"
	"github.com/stiihlw/stiihlw/internal/report"
	"github.com/urfave/cli/v2"
)

// DescribeCommand summarizes a sample.
var DescribeCommand = cli.Command{
	Action:    describeAction,
	Name:      "describe",
	Usage:     "describe the distribution of a sample",
	ArgsUsage: "[FILE|-]",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&ConfigFlag,
		&ColumnFlag,
		&SheetFlag,
	},
	Description: "Reads numbers from a CSV or XLSX file, or newline-separated numbers from stdin, and prints their moments and percentiles.",
}

func describeAction(ctx *cli.Context) error {
	cfg, err := readConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Logging.Level, "Describe")
	data, err := loadData(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	log.Infof("Read %d values from %s, dropped %d", len(data.Values), data.Source, data.Dropped)

	s, err := report.Summarize(data.Values)
	if err != nil {
		return err
	}
	report.WriteSummary(ctx.App.Writer, s)
	return nil
}
