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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-hyrmis/hyrmis"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the thresholds in effect and CPU details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			a.warnThresholds(s.Thresholds)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Thresholds: lower=%d upper=%d\n", s.Thresholds.Lower, s.Thresholds.Upper)
			for _, strategy := range hyrmis.Strategies {
				fmt.Fprintf(w, "  %-9s %s\n", strategy, describeRange(strategy, s.Thresholds))
			}
			fmt.Fprintf(w, "Platform: %s/%s, GOMAXPROCS=%d\n", runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0))
			fmt.Fprintf(w, "CPU features: %s\n", cpuFeatures())
			return nil
		},
	}
}

// describeRange reports which input lengths reach strategy under t.
func describeRange(strategy hyrmis.Strategy, t hyrmis.Thresholds) string {
	switch strategy {
	case hyrmis.StrategyInsertion:
		if t.Lower < 0 {
			return "never"
		}
		return fmt.Sprintf("n <= %d", t.Lower)
	case hyrmis.StrategyMerge:
		lo := max(t.Lower+1, 0)
		if t.Upper < lo {
			return "never"
		}
		return fmt.Sprintf("%d <= n <= %d", lo, t.Upper)
	default:
		return fmt.Sprintf("n > %d", max(t.Upper, t.Lower))
	}
}

func cpuFeatures() string {
	switch runtime.GOARCH {
	case "amd64":
		return fmt.Sprintf("avx2=%t avx512=%t", cpu.X86.HasAVX2, cpu.X86.HasAVX512)
	case "arm64":
		return fmt.Sprintf("asimd=%t sve=%t", cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	default:
		return "unknown"
	}
}
