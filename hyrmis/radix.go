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

import "math"

// RadixSort returns a sorted copy of data using LSD radix sort on decimal
// digits; data itself is left untouched.
//
// Non-negative values and the magnitudes of negative values are sorted
// separately. The negative magnitudes are then reversed and negated, which
// puts them in ascending order ahead of the non-negative values.
// Magnitudes are held as uint64, so math.MinInt64 is handled exactly.
func RadixSort[T Integer](data []T) []T {
	out := make([]T, 0, len(data))
	if len(data) == 0 {
		return out
	}

	var positives, negatives []uint64
	for _, v := range data {
		if v < 0 {
			// -v wraps for MinInt64; the uint64 conversion recovers 1<<63.
			negatives = append(negatives, uint64(-int64(v)))
		} else {
			positives = append(positives, uint64(v))
		}
	}

	buf := make([]uint64, max(len(positives), len(negatives)))
	if len(negatives) > 0 {
		radixSortMagnitudes(negatives, buf[:len(negatives)])
		for i := len(negatives) - 1; i >= 0; i-- {
			out = append(out, T(-int64(negatives[i])))
		}
	}
	if len(positives) > 0 {
		radixSortMagnitudes(positives, buf[:len(positives)])
		for _, m := range positives {
			out = append(out, T(m))
		}
	}
	return out
}

// radixSortMagnitudes sorts a non-empty slice of magnitudes in place, one
// decimal digit per pass starting from the ones place. buf must have the same
// length as mags.
func radixSortMagnitudes(mags, buf []uint64) {
	maxMag := mags[0]
	for _, m := range mags[1:] {
		maxMag = max(maxMag, m)
	}

	for exp := uint64(1); maxMag/exp > 0; exp *= 10 {
		countingPass(mags, buf, exp)
		if exp > math.MaxUint64/10 {
			break
		}
	}
}
