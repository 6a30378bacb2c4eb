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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs/v2"

	"github.com/ajroetker/go-hyrmis/hyrmis"
)

func (a *app) sortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [-- values...]",
		Short: "Sort integers given as arguments or on stdin",
		Long: "Sort integers given as arguments or on stdin.\n\n" +
			"Arguments may be separated by spaces or commas. Put them after \"--\"\n" +
			"so negative values are not read as flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			a.warnThresholds(s.Thresholds)

			values, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			sorted, err := a.sortValues(values, s)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), sorted)
		},
	}
	a.opts.bindSort(cmd.Flags())
	return cmd
}

func (a *app) sortValues(values []int64, s settings) ([]int64, error) {
	strategy, forced, err := s.forcedStrategy()
	if err != nil {
		return nil, err
	}

	if forced {
		start := time.Now()
		hyrmis.SortWith(values, strategy)
		a.log.Debug("sorted", "strategy", strategy, "n", len(values), "forced", true, "elapsed", time.Since(start))
		return values, nil
	}

	cfg := hyrmis.Config{
		Thresholds: s.Thresholds,
		Observer: hyrmis.ObserverFunc(func(strategy hyrmis.Strategy, n int, elapsed time.Duration) {
			a.log.Debug("sorted", "strategy", strategy, "n", n, "thresholds", s.Thresholds, "elapsed", elapsed)
		}),
	}
	return hyrmis.SortConfig(values, cfg), nil
}

// warnThresholds logs threshold pairs that disable an algorithm. They are
// still used as given.
func (a *app) warnThresholds(t hyrmis.Thresholds) {
	if err := t.Validate(); err != nil {
		a.log.Warn("unusual thresholds", slog.String("thresholds", t.String()), slog.Any("error", err))
	}
}

// readValues parses integers from args, or from r when args is empty.
func readValues(args []string, r io.Reader) ([]int64, error) {
	tokens := lo.Filter(
		lo.FlatMap(args, func(arg string, _ int) []string { return strings.Split(arg, ",") }),
		func(tok string, _ int) bool { return strings.TrimSpace(tok) != "" },
	)

	if len(args) == 0 {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 1<<24)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			tokens = append(tokens, strings.Split(scanner.Text(), ",")...)
		}
		if err := scanner.Err(); err != nil {
			return nil, errs.Wrap(err)
		}
		tokens = lo.Compact(tokens)
	}

	values := make([]int64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			return nil, errs.Errorf("invalid integer %q", tok)
		}
		values = append(values, v)
	}
	return values, nil
}

func writeValues(w io.Writer, values []int64) error {
	line := strings.Join(lo.Map(values, func(v int64, _ int) string {
		return strconv.FormatInt(v, 10)
	}), " ")
	_, err := fmt.Fprintln(w, line)
	return errs.Wrap(err)
}
