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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeebo/mwc"
)

func TestInsertionSort(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{1}, []int{1}},
		{"sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{"reverse", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}},
		{"all same", []int{7, 7, 7, 7}, []int{7, 7, 7, 7}},
		{"negatives", []int{0, -1, 2, -3, 4}, []int{-3, -1, 0, 2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.data)
			InsertionSort(data)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestInsertionSortRandom(t *testing.T) {
	rng := mwc.Rand()
	for _, n := range []int{2, 3, 8, 16, 33, 64} {
		data := randomInts(rng, n, -100, 100)
		want := sortedCopy(data)
		InsertionSort(data)
		assert.Equal(t, want, data, "n=%d", n)
	}
}
