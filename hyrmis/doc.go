// Package hyrmis provides HyRMIS sort: a hybrid of radix, merge and insertion
// sort for signed integers.
//
// The input size selects exactly one algorithm:
//   - n <= lower threshold: insertion sort, in place
//   - n <= upper threshold: merge sort into a scratch buffer
//   - otherwise: LSD radix sort on decimal digits, negatives handled by
//     sorting their magnitudes separately
//
// # Example Usage
//
//	import "github.com/ajroetker/go-hyrmis/hyrmis"
//
//	func Process(data []int64) {
//	    hyrmis.Sort(data) // default thresholds: upper 1000, lower 16
//	}
//
//	func ProcessTuned(data []int32) {
//	    hyrmis.SortThresholds(data, 2048, 32)
//	}
//
// # Thresholds
//
// Thresholds are not validated. A negative lower threshold disables the
// insertion path, a lower threshold above the upper one disables the merge
// path. Thresholds.Validate reports such pairs for callers who care, but the
// dispatcher itself always follows the plain comparison chain.
//
// # Concurrency
//
// Every call is synchronous and single-threaded. The caller must not mutate
// the slice from another goroutine while a sort is running.
package hyrmis
