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

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/mwc"
)

var (
	mixedInput  = []int{170, -45, 75, -90, 802, -24, 2, 66, -1, 0, 123, -500}
	mixedSorted = []int{-500, -90, -45, -24, -1, 0, 2, 66, 75, 123, 170, 802}

	wideInput = []int{
		170, -45, 75, -90, 802, -24, 2, 66, -1, 0, 123, -500,
		10000, -10000, 1000000, -1000000, 1000000000, -1000000000,
	}
	wideSorted = []int{
		-1000000000, -1000000, -10000, -500, -90, -45, -24, -1,
		0, 2, 66, 75, 123, 170, 802, 10000, 1000000, 1000000000,
	}
)

// randomInts returns n values drawn uniformly from [lo, hi].
func randomInts(rng *mwc.T, n int, lo, hi int64) []int64 {
	data := make([]int64, n)
	span := uint64(hi - lo + 1)
	for i := range data {
		data[i] = lo + int64(rng.Uint64n(span))
	}
	return data
}

func sortedCopy[T Integer](data []T) []T {
	ref := slices.Clone(data)
	slices.Sort(ref)
	return ref
}

func TestSortEmpty(t *testing.T) {
	var empty []int
	assert.Empty(t, Sort(empty))
	assert.Empty(t, Sort([]int{}))
}

func TestSortSingle(t *testing.T) {
	data := []int{42}
	got := Sort(data)
	assert.Equal(t, []int{42}, got)
	assert.Same(t, &data[0], &got[0])
}

func TestSortInsertionPath(t *testing.T) {
	data := slices.Clone(mixedInput)
	require.Equal(t, StrategyInsertion, Choose(len(data), DefaultThresholds))

	got := Sort(data)
	if diff := cmp.Diff(mixedSorted, got); diff != "" {
		t.Errorf("Sort(mixed) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortMergePath(t *testing.T) {
	data := slices.Clone(wideInput)
	require.Equal(t, StrategyMerge, Choose(len(data), DefaultThresholds))

	got := Sort(data)
	if diff := cmp.Diff(wideSorted, got); diff != "" {
		t.Errorf("Sort(wide) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortRadixPath(t *testing.T) {
	rng := mwc.Rand()
	data := randomInts(rng, 10000, -10000, 10000)
	require.Equal(t, StrategyRadix, Choose(len(data), DefaultThresholds))

	want := sortedCopy(data)
	got := Sort(data)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort(random 10000) mismatch (-want +got):\n%s", diff)
	}
}

// TestSortHandleReflectsResult checks that every path leaves the sorted order
// in the caller's slice, not only in the returned one.
func TestSortHandleReflectsResult(t *testing.T) {
	for _, s := range Strategies {
		t.Run(s.String(), func(t *testing.T) {
			data := slices.Clone(wideInput)
			got := SortWith(data, s)
			assert.Equal(t, wideSorted, data)
			assert.Same(t, &data[0], &got[0])
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := mwc.Rand()
	for _, n := range []int{0, 1, 7, 16, 17, 100, 1000, 1001, 5000} {
		data := Sort(randomInts(rng, n, -1000, 1000))
		again := Sort(slices.Clone(data))
		assert.Equal(t, data, again, "n=%d", n)
	}
}

func TestSortSizes(t *testing.T) {
	rng := mwc.Rand()
	sizes := []int{0, 1, 2, 7, 15, 16, 17, 31, 64, 100, 999, 1000, 1001, 4096}
	for _, n := range sizes {
		data := randomInts(rng, n, -1<<40, 1<<40)
		want := sortedCopy(data)
		Sort(data)
		if !slices.Equal(want, data) {
			t.Errorf("Sort(random int64, n=%d) produced wrong result", n)
		}
	}
}

func TestSortThresholdsZero(t *testing.T) {
	// Lower 0 sends everything non-empty to merge, upper 0 sends it on to radix.
	data := slices.Clone(mixedInput)
	assert.Equal(t, mixedSorted, SortThresholds(data, 1000, 0))

	data = slices.Clone(mixedInput)
	assert.Equal(t, mixedSorted, SortThresholds(data, 0, 0))
}

func TestSortPermissiveThresholds(t *testing.T) {
	tests := []struct {
		name         string
		upper, lower int
		want         Strategy
	}{
		{"negative lower", 1000, -1, StrategyMerge},
		{"negative both", -5, -1, StrategyRadix},
		{"lower above upper", 4, 100, StrategyInsertion},
		{"lower above upper, large n", 4, 8, StrategyRadix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen Strategy = -1
			cfg := Config{
				Thresholds: Thresholds{Upper: tt.upper, Lower: tt.lower},
				Observer: ObserverFunc(func(s Strategy, n int, _ time.Duration) {
					seen = s
				}),
			}
			data := slices.Clone(mixedInput)
			SortConfig(data, cfg)
			assert.Equal(t, tt.want, seen)
			assert.Equal(t, mixedSorted, data)
		})
	}
}

func TestSortObserver(t *testing.T) {
	type call struct {
		strategy Strategy
		n        int
	}
	var calls []call
	cfg := DefaultConfig()
	cfg.Observer = ObserverFunc(func(s Strategy, n int, elapsed time.Duration) {
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
		calls = append(calls, call{s, n})
	})

	SortConfig(make([]int32, 3), cfg)
	SortConfig(make([]int32, 300), cfg)
	SortConfig(make([]int32, 3000), cfg)

	want := []call{
		{StrategyInsertion, 3},
		{StrategyMerge, 300},
		{StrategyRadix, 3000},
	}
	if diff := cmp.Diff(want, calls, cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("observer calls mismatch (-want +got):\n%s", diff)
	}
}

// TestSortBoundaryAgreement sorts inputs sized exactly at and just past each
// threshold with every algorithm and checks they agree with the dispatcher.
func TestSortBoundaryAgreement(t *testing.T) {
	rng := mwc.Rand()
	th := Thresholds{Upper: 200, Lower: 16}
	for _, n := range []int{th.Lower, th.Lower + 1, th.Upper, th.Upper + 1} {
		input := randomInts(rng, n, -5000, 5000)
		want := SortThresholds(slices.Clone(input), th.Upper, th.Lower)
		for _, s := range Strategies {
			got := SortWith(slices.Clone(input), s)
			assert.Equal(t, want, got, "n=%d strategy=%s", n, s)
		}
	}
}

func TestSortExtremes(t *testing.T) {
	data := []int64{0, math.MaxInt64, -1, math.MinInt64, 1, math.MinInt64 + 1, math.MaxInt64 - 1}
	want := []int64{math.MinInt64, math.MinInt64 + 1, -1, 0, 1, math.MaxInt64 - 1, math.MaxInt64}
	for _, s := range Strategies {
		got := SortWith(slices.Clone(data), s)
		assert.Equal(t, want, got, "strategy=%s", s)
	}
}

func TestSortNarrowTypes(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		data := []int8{127, -128, 0, -1, 1, -128, 127}
		want := []int8{-128, -128, -1, 0, 1, 127, 127}
		for _, s := range Strategies {
			assert.Equal(t, want, SortWith(slices.Clone(data), s), "strategy=%s", s)
		}
	})
	t.Run("int16", func(t *testing.T) {
		data := []int16{math.MinInt16, 300, -300, math.MaxInt16}
		want := []int16{math.MinInt16, -300, 300, math.MaxInt16}
		for _, s := range Strategies {
			assert.Equal(t, want, SortWith(slices.Clone(data), s), "strategy=%s", s)
		}
	})
	t.Run("named", func(t *testing.T) {
		type score int32
		data := []score{5, -3, 0, -3}
		want := []score{-3, -3, 0, 5}
		for _, s := range Strategies {
			assert.Equal(t, want, SortWith(slices.Clone(data), s), "strategy=%s", s)
		}
	})
}

func TestSortWithUnknownStrategy(t *testing.T) {
	assert.Panics(t, func() { SortWith([]int{2, 1}, Strategy(42)) })
}
