// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Stiihlw explores, samples and fits the sine Type II half-logistic
// Weibull distribution.
//
// Usage:
//
//	stiihlw curves   [--dist weibull|stiihlw] [--lambda λ] [--k k] [--alpha α]
//	stiihlw quantile --p p [--p p ...] [parameters]
//	stiihlw sample   --n n [--seed s] [parameters]
//	stiihlw fit      [--bootstrap N] [--column c] FILE|-
//	stiihlw describe [--column c] FILE|-
//	stiihlw plot     --out FILE.{png,html} [--data FILE] [parameters]
//
// Settings not given as flags come from the file named by --config and
// from STIIHLW_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "stiihlw",
		Usage: "sine Type II half-logistic Weibull distribution tool",
		Commands: []*cli.Command{
			&CurvesCommand,
			&QuantileCommand,
			&SampleCommand,
			&FitCommand,
			&DescribeCommand,
			&PlotCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
