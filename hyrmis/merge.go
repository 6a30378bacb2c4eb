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

import "slices"

// MergeSort returns a sorted copy of data; data itself is left untouched.
//
// The sort is stable: on ties the element from the left half is emitted
// first. A single scratch buffer of len(data) is shared by every level of
// the recursion.
func MergeSort[T Integer](data []T) []T {
	out := slices.Clone(data)
	if len(out) <= 1 {
		return out
	}
	mergeSortRange(out, make([]T, len(out)))
	return out
}

// mergeSortRange sorts data using buf, which must have the same length, as
// scratch space.
func mergeSortRange[T Integer](data, buf []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	mid := n / 2
	mergeSortRange(data[:mid], buf[:mid])
	mergeSortRange(data[mid:], buf[mid:])

	// Halves already in order
	if data[mid-1] <= data[mid] {
		return
	}

	copy(buf, data)
	merge(data, buf[:mid], buf[mid:])
}

// merge writes the ordered union of left and right into dst.
// dst must not overlap left or right.
func merge[T Integer](dst, left, right []T) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
