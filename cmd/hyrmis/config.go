// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/zeebo/errs/v2"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-hyrmis/hyrmis"
	"github.com/ajroetker/go-hyrmis/hyrmis/contrib/verify"
)

// options holds raw flag values.
type options struct {
	configPath string
	logLevel   string
	logJSON    bool

	tuned        bool
	upper, lower int
	strategy     string

	trials, maxLen, workers int
	seed                    uint64
	minValue, maxValue      int64
}

func (o *options) bindGlobal(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&o.logJSON, "log-json", false, "log as JSON instead of text")
	fs.BoolVar(&o.tuned, "tuned", false, "start from the tuned thresholds instead of the defaults")
	fs.IntVar(&o.upper, "upper", hyrmis.DefaultThresholds.Upper, "largest input sorted with merge sort")
	fs.IntVar(&o.lower, "lower", hyrmis.DefaultThresholds.Lower, "largest input sorted with insertion sort")
}

func (o *options) bindSort(fs *pflag.FlagSet) {
	fs.StringVar(&o.strategy, "strategy", "", "force insertion, merge or radix instead of dispatching by size")
}

func (o *options) bindVerify(fs *pflag.FlagSet) {
	def := verify.DefaultTrialConfig()
	fs.IntVar(&o.trials, "trials", def.Trials, "number of random sequences to sort")
	fs.IntVar(&o.maxLen, "max-len", def.MaxLen, "maximum sequence length")
	fs.IntVar(&o.workers, "workers", 0, "concurrent trial workers, 0 for GOMAXPROCS")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed, 0 for a random run")
	fs.Int64Var(&o.minValue, "min", def.Min, "smallest generated value")
	fs.Int64Var(&o.maxValue, "max", def.Max, "largest generated value")
}

// fileConfig is the YAML configuration file layout. Absent keys leave the
// built-in defaults alone.
type fileConfig struct {
	Tuned          *bool   `yaml:"tuned"`
	UpperThreshold *int    `yaml:"upper_threshold"`
	LowerThreshold *int    `yaml:"lower_threshold"`
	Strategy       *string `yaml:"strategy"`
	Workers        *int    `yaml:"workers"`
	Trials         *int    `yaml:"trials"`
	Seed           *uint64 `yaml:"seed"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, errs.Wrap(err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, errs.Errorf("parsing %s: %w", path, err)
	}
	return fc, nil
}

// settings is the resolved configuration a subcommand runs with.
type settings struct {
	Thresholds hyrmis.Thresholds

	// Strategy is empty or "auto" for size-based dispatch.
	Strategy string

	Trials  int
	Workers int
	Seed    uint64
}

// resolve layers defaults, the config file, the environment and explicitly
// set flags, in that order. The tuned setting only picks the base
// thresholds, so explicit threshold keys, variables and flags still win.
func (o *options) resolve(fs *pflag.FlagSet) (settings, error) {
	s := settings{
		Trials:   o.trials,
		Workers:  o.workers,
		Seed:     o.seed,
		Strategy: o.strategy,
	}

	var fc fileConfig
	if o.configPath != "" {
		var err error
		if fc, err = loadFileConfig(o.configPath); err != nil {
			return s, err
		}
	}

	tuned := o.tuned
	if !fs.Changed("tuned") {
		setIf(&tuned, fc.Tuned)
	}
	s.Thresholds = hyrmis.DefaultThresholds
	if tuned {
		s.Thresholds = hyrmis.TunedThresholds
	}

	setIf(&s.Thresholds.Upper, fc.UpperThreshold)
	setIf(&s.Thresholds.Lower, fc.LowerThreshold)
	setIf(&s.Strategy, fc.Strategy)
	setIf(&s.Trials, fc.Trials)
	setIf(&s.Workers, fc.Workers)
	setIf(&s.Seed, fc.Seed)

	th, err := hyrmis.ThresholdsFromEnv(s.Thresholds)
	if err != nil {
		return s, err
	}
	s.Thresholds = th

	if fs.Changed("upper") {
		s.Thresholds.Upper = o.upper
	}
	if fs.Changed("lower") {
		s.Thresholds.Lower = o.lower
	}
	if fs.Changed("strategy") {
		s.Strategy = o.strategy
	}
	if fs.Changed("trials") {
		s.Trials = o.trials
	}
	if fs.Changed("workers") {
		s.Workers = o.workers
	}
	if fs.Changed("seed") {
		s.Seed = o.seed
	}
	return s, nil
}

// forcedStrategy parses s.Strategy. ok is false when dispatch should pick.
func (s settings) forcedStrategy() (strategy hyrmis.Strategy, ok bool, err error) {
	if s.Strategy == "" || s.Strategy == "auto" {
		return 0, false, nil
	}
	strategy, err = hyrmis.ParseStrategy(s.Strategy)
	return strategy, err == nil, err
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
