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

// radixBase is the number of distinct digit values per pass.
const radixBase = 10

// CountingPass stably reorders data by the decimal digit (v / exp) % 10.
// exp must be a positive power of ten.
func CountingPass(data []uint64, exp uint64) {
	if len(data) == 0 {
		return
	}
	countingPass(data, make([]uint64, len(data)), exp)
}

// countingPass is CountingPass with a caller-supplied output buffer of the
// same length as data.
func countingPass(data, output []uint64, exp uint64) {
	var count [radixBase]int
	for _, v := range data {
		count[(v/exp)%radixBase]++
	}

	// count[d] becomes one past the last slot for digit d
	for d := 1; d < radixBase; d++ {
		count[d] += count[d-1]
	}

	// Reverse scan with post-decrement keeps equal digits in input order
	for i := len(data) - 1; i >= 0; i-- {
		d := (data[i] / exp) % radixBase
		count[d]--
		output[count[d]] = data[i]
	}

	copy(data, output)
}
