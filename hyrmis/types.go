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

package hyrmis

import "time"

// Integer is a constraint for the fixed-width signed integer types that can
// be sorted.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Observer receives one notification per dispatched sort.
// Implementations must be safe for concurrent use if the same Config is
// shared between goroutines.
type Observer interface {
	ObserveSort(strategy Strategy, n int, elapsed time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(strategy Strategy, n int, elapsed time.Duration)

// ObserveSort calls f(strategy, n, elapsed).
func (f ObserverFunc) ObserveSort(strategy Strategy, n int, elapsed time.Duration) {
	f(strategy, n, elapsed)
}

// Config bundles the dispatch thresholds with an optional Observer.
type Config struct {
	Thresholds Thresholds

	// Observer, if set, is told which strategy ran and how long it took.
	Observer Observer
}

// DefaultConfig returns a Config using DefaultThresholds and no Observer.
func DefaultConfig() Config {
	return Config{Thresholds: DefaultThresholds}
}
