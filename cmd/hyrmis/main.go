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

// Command hyrmis sorts integers with HyRMIS sort and verifies the sorter
// against a reference order.
//
// Usage:
//
//	hyrmis sort -- 170 -45 75 -90 802          # values as arguments
//	echo "3 1 2" | hyrmis sort                 # values from stdin
//	hyrmis sort --strategy radix -- 5 -5 0     # bypass threshold dispatch
//	hyrmis verify --trials 10000 --seed 42     # randomized property checks
//	hyrmis info                                # thresholds and CPU features
//
// Thresholds come from, in increasing priority: built-in defaults, the
// --config YAML file, HYRMIS_UPPER_THRESHOLD / HYRMIS_LOWER_THRESHOLD, and
// the --upper / --lower flags.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
