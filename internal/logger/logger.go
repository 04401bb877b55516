// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger configures leveled module loggers for the
// command line tools.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{time:15:04:05.000} %{module} %{level:.4s} %{message}"

// LogLevelFlag selects the verbosity of every logger created for a
// command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of logging (critical, error, warning, notice, info, debug)",
	Value:   "info",
	EnvVars: []string{"STIIHLW_LOGGING_LEVEL"},
}

// NewLogger returns a logger for module writing to stderr at the
// given level. An unknown level selects INFO.
func NewLogger(level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)
	format := logging.MustStringFormatter(defaultLogFormat)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)
	// IsEnabledFor consults the default backend.
	logging.SetLevel(lvl, module)
	return log
}

// ParseTime splits elapsed into whole hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second).Seconds())
	return total / 3600, total % 3600 / 60, total % 60
}
