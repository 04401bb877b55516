// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stiihlw/stiihlw/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stiihlw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadDefaults(t *testing.T) {
	cfg, err := Read("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Fit.MaxIterations)
	assert.Equal(t, 20000, cfg.Fit.FuncEvaluations)
	assert.Equal(t, 1000, cfg.Curve.Points)
	assert.Equal(t, 200, cfg.Bootstrap.Resamples)
	assert.False(t, cfg.Bootstrap.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Nil(t, cfg.Source())

	opts := cfg.FitOptions()
	assert.Equal(t, stats.DefaultBounds(), opts.Bounds)
	assert.Equal(t, 1e-9, opts.Tolerance)
	assert.Equal(t, 200, opts.StallIterations)

	grid := cfg.Grid(2)
	assert.Len(t, grid, 1000)
	assert.InDelta(t, 12, grid[len(grid)-1], 1e-12)

	assert.Equal(t, Default(), cfg)
}

func TestReadFile(t *testing.T) {
	path := writeConfig(t, `
fit:
  maxIterations: 100
  kMax: 5
sample:
  seed: 42
curve:
  points: 11
  span: 2
logging:
  level: DEBUG
`)
	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Fit.MaxIterations)
	assert.Equal(t, 5.0, cfg.Fit.KMax)
	assert.Equal(t, 0.1, cfg.Fit.KMin)
	assert.Equal(t, uint64(42), cfg.Sample.Seed)
	assert.NotNil(t, cfg.Source())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, stats.Linspace(0.001, 2, 11), cfg.Grid(1))
}

func TestReadEnv(t *testing.T) {
	t.Setenv("STIIHLW_BOOTSTRAP_RESAMPLES", "17")
	t.Setenv("STIIHLW_LOGGING_LEVEL", "warning")
	t.Setenv("STIIHLW_BOOTSTRAP_ENABLED", "true")
	path := writeConfig(t, "bootstrap:\n  resamples: 5\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.Bootstrap.Resamples)
	assert.True(t, cfg.Bootstrap.Enabled)
	assert.Equal(t, "warning", cfg.Logging.Level)

	opts := cfg.BootstrapOptions(nil)
	assert.Equal(t, 17, opts.Resamples)
	assert.Equal(t, 0.95, opts.Confidence)
	assert.Equal(t, cfg.FitOptions(), opts.Fit)
}

func TestReadInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"tolerance":  "fit:\n  tolerance: -1\n",
		"kBox":       "fit:\n  kMin: 3\n  kMax: 2\n",
		"confidence": "bootstrap:\n  confidence: 1.5\n",
		"points":     "curve:\n  points: 1\n",
		"level":      "logging:\n  level: loud\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Read(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
