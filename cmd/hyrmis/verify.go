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
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs/v2"

	"github.com/ajroetker/go-hyrmis/hyrmis"
	"github.com/ajroetker/go-hyrmis/hyrmis/contrib/telemetry"
	"github.com/ajroetker/go-hyrmis/hyrmis/contrib/verify"
)

// maxLoggedFailures caps how many individual failures verify logs.
const maxLoggedFailures = 10

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Sort random sequences and check every result against a reference order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			a.warnThresholds(s.Thresholds)

			reg := prometheus.NewRegistry()
			cfg := verify.TrialConfig{
				Trials:  s.Trials,
				MaxLen:  a.opts.maxLen,
				Min:     a.opts.minValue,
				Max:     a.opts.maxValue,
				Workers: s.Workers,
				Seed:    s.Seed,
				Sort: hyrmis.Config{
					Thresholds: s.Thresholds,
					Observer:   telemetry.New(reg),
				},
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.log.Info("starting verification",
				"trials", cfg.Trials,
				"max_len", cfg.MaxLen,
				"thresholds", cfg.Sort.Thresholds,
				"seed", cfg.Seed,
			)

			report, err := verify.RunTrials(cmd.Context(), cfg)
			a.logReport(report)
			a.logMetrics(reg)
			if err != nil {
				return err
			}
			if len(report.Failures) > 0 {
				return errs.Errorf("%d of %d trials failed", len(report.Failures), report.Trials)
			}
			return nil
		},
	}
	a.opts.bindVerify(cmd.Flags())
	return cmd
}

func (a *app) logReport(r verify.Report) {
	a.log.Info("verification finished",
		"trials", r.Trials,
		"elements", r.Elements,
		"insertion", r.ByStrategy[hyrmis.StrategyInsertion],
		"merge", r.ByStrategy[hyrmis.StrategyMerge],
		"radix", r.ByStrategy[hyrmis.StrategyRadix],
		"failures", len(r.Failures),
		"elapsed", r.Elapsed,
	)
	for i, err := range r.Failures {
		if i == maxLoggedFailures {
			a.log.Error("more failures omitted", "count", len(r.Failures)-i)
			break
		}
		a.log.Error("trial failed", "error", err)
	}
}

func (a *app) logMetrics(g prometheus.Gatherer) {
	samples, err := telemetry.Snapshot(g)
	if err != nil {
		a.log.Warn("gathering metrics", "error", err)
		return
	}
	for _, s := range samples {
		a.log.Debug("metric", slog.String("name", s.Name), slog.String("strategy", s.Strategy), slog.Float64("value", s.Value))
	}
}
