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

// Sort sorts data in ascending order using DefaultThresholds and returns data.
//
//   - len(data) <= 16: insertion sort
//   - len(data) <= 1000: merge sort
//   - otherwise: radix sort
func Sort[T Integer](data []T) []T {
	return SortConfig(data, DefaultConfig())
}

// SortThresholds sorts data in ascending order, choosing the algorithm by
// comparing len(data) against upper and lower, and returns data.
func SortThresholds[T Integer](data []T, upper, lower int) []T {
	return SortConfig(data, Config{Thresholds: Thresholds{Upper: upper, Lower: lower}})
}

// SortConfig sorts data in ascending order using cfg and returns data.
// Whichever algorithm runs, the sorted order is visible through data
// afterward.
func SortConfig[T Integer](data []T, cfg Config) []T {
	strategy := Choose(len(data), cfg.Thresholds)
	if cfg.Observer == nil {
		return SortWith(data, strategy)
	}

	start := time.Now()
	SortWith(data, strategy)
	cfg.Observer.ObserveSort(strategy, len(data), time.Since(start))
	return data
}

// SortWith sorts data with the given strategy, bypassing threshold dispatch,
// and returns data. Strategies that produce a new slice have their result
// copied back into data.
func SortWith[T Integer](data []T, strategy Strategy) []T {
	switch strategy {
	case StrategyInsertion:
		InsertionSort(data)
	case StrategyMerge:
		copy(data, MergeSort(data))
	case StrategyRadix:
		copy(data, RadixSort(data))
	default:
		panic("hyrmis: unknown strategy " + strategy.String())
	}
	return data
}
