// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the settings shared by the stiihlw commands
// from defaults, an optional YAML file and STIIHLW_* environment
// variables, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stiihlw/stiihlw/stats"
	"golang.org/x/exp/rand"
)

// EnvPrefix prefixes every environment variable read by Read. Nested
// keys join with underscores, as in STIIHLW_FIT_MAXITERATIONS.
const EnvPrefix = "STIIHLW"

type Config struct {
	Fit       Fit       `mapstructure:"fit" validate:"required"`
	Sample    Sample    `mapstructure:"sample"`
	Curve     Curve     `mapstructure:"curve" validate:"required"`
	Bootstrap Bootstrap `mapstructure:"bootstrap" validate:"required"`
	Logging   Logging   `mapstructure:"logging" validate:"required"`
}

// Fit holds the optimizer limits and the parameter box.
type Fit struct {
	MaxIterations   int     `mapstructure:"maxIterations" validate:"gt=0"`
	FuncEvaluations int     `mapstructure:"funcEvaluations" validate:"gt=0"`
	Tolerance       float64 `mapstructure:"tolerance" validate:"gt=0"`
	StallIterations int     `mapstructure:"stallIterations" validate:"gt=0"`

	LambdaMin       float64 `mapstructure:"lambdaMin" validate:"gt=0"`
	LambdaMaxFactor float64 `mapstructure:"lambdaMaxFactor" validate:"gt=1"`
	KMin            float64 `mapstructure:"kMin" validate:"gt=0"`
	KMax            float64 `mapstructure:"kMax" validate:"gtfield=KMin"`
	AlphaMin        float64 `mapstructure:"alphaMin" validate:"gt=0"`
	AlphaMax        float64 `mapstructure:"alphaMax" validate:"gtfield=AlphaMin"`
}

type Sample struct {
	// Seed seeds the random source. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// Curve describes the evaluation grid: Points values from 0.001 to
// Span·λ.
type Curve struct {
	Points int     `mapstructure:"points" validate:"gte=2"`
	Span   float64 `mapstructure:"span" validate:"gt=0"`
}

// Bootstrap controls resampled confidence intervals for fit. They are
// computed only when Enabled is set and Resamples is positive.
type Bootstrap struct {
	Enabled    bool    `mapstructure:"enabled"`
	Resamples  int     `mapstructure:"resamples" validate:"gte=0"`
	Confidence float64 `mapstructure:"confidence" validate:"gt=0,lt=1"`
}

type Logging struct {
	Level string `mapstructure:"level" validate:"oneof=critical error warning notice info debug"`
}

func setDefaults(v *viper.Viper) {
	fit := stats.DefaultBounds()
	v.SetDefault("fit.maxIterations", 5000)
	v.SetDefault("fit.funcEvaluations", 20000)
	v.SetDefault("fit.tolerance", 1e-9)
	v.SetDefault("fit.stallIterations", 200)
	v.SetDefault("fit.lambdaMin", fit.LambdaMin)
	v.SetDefault("fit.lambdaMaxFactor", fit.LambdaMaxFactor)
	v.SetDefault("fit.kMin", fit.KMin)
	v.SetDefault("fit.kMax", fit.KMax)
	v.SetDefault("fit.alphaMin", fit.AlphaMin)
	v.SetDefault("fit.alphaMax", fit.AlphaMax)

	v.SetDefault("sample.seed", 0)

	v.SetDefault("curve.points", 1000)
	v.SetDefault("curve.span", 6)

	v.SetDefault("bootstrap.enabled", false)
	v.SetDefault("bootstrap.resamples", 200)
	v.SetDefault("bootstrap.confidence", 0.95)

	v.SetDefault("logging.level", "info")
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	cfg, err := read(viper.New(), "")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Read loads the configuration. If path is empty only defaults and
// the environment are used; otherwise the YAML file at path must
// exist.
func Read(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return read(v, path)
}

func read(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints and reports all
// violations in one error.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "unable to validate config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Error())
	}
	return errors.Newf("invalid config:\n\t%s", strings.Join(msgs, "\n\t"))
}

// FitOptions returns the estimator settings.
func (c *Config) FitOptions() *stats.FitOptions {
	f := c.Fit
	return &stats.FitOptions{
		Bounds: stats.ParamBounds{
			LambdaMin:       f.LambdaMin,
			LambdaMaxFactor: f.LambdaMaxFactor,
			KMin:            f.KMin,
			KMax:            f.KMax,
			AlphaMin:        f.AlphaMin,
			AlphaMax:        f.AlphaMax,
		},
		MaxIterations:   f.MaxIterations,
		FuncEvaluations: f.FuncEvaluations,
		Tolerance:       f.Tolerance,
		StallIterations: f.StallIterations,
	}
}

// Source returns a random source seeded with Sample.Seed, or nil to
// let the sampler seed from the clock.
func (c *Config) Source() rand.Source {
	if c.Sample.Seed == 0 {
		return nil
	}
	return rand.NewSource(c.Sample.Seed)
}

// Grid returns the curve evaluation grid for scale lambda.
func (c *Config) Grid(lambda float64) []float64 {
	return stats.Linspace(0.001, c.Curve.Span*lambda, c.Curve.Points)
}

// BootstrapOptions returns the bootstrap settings, resampling with
// src.
func (c *Config) BootstrapOptions(src rand.Source) stats.BootstrapOptions {
	return stats.BootstrapOptions{
		Resamples:  c.Bootstrap.Resamples,
		Confidence: c.Bootstrap.Confidence,
		Src:        src,
		Fit:        c.FitOptions(),
	}
}
