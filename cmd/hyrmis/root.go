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
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs/v2"
)

// app holds the parsed command-line state shared by all subcommands.
type app struct {
	opts options

	// log is configured from --log-level and --log-json before any
	// subcommand runs, unless it was already set.
	log *slog.Logger
}

func newApp() *app {
	return &app{}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hyrmis",
		Short:        "Hybrid radix/merge/insertion sort for integers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			logger, err := newLogger(cmd.ErrOrStderr(), a.opts.logLevel, a.opts.logJSON)
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
	}

	a.opts.bindGlobal(cmd.PersistentFlags())
	cmd.AddCommand(a.sortCmd(), a.verifyCmd(), a.infoCmd())
	return cmd
}

// newLogger builds a text or JSON slog.Logger writing to w at the named level.
func newLogger(w io.Writer, level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, errs.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}
