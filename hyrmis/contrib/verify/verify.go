// Package verify checks HyRMIS sort results against a reference total order.
//
// The checks mirror the properties every sort must satisfy: ascending
// order, permutation of the input, idempotence, and agreement between the
// three algorithms at the dispatch boundaries. RunTrials drives them over
// many random inputs.
package verify

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-hyrmis/hyrmis"
)

// FailureKind classifies a verification failure.
type FailureKind int

const (
	// KindUnordered means an adjacent pair was out of order.
	KindUnordered FailureKind = iota

	// KindNotPermutation means the output multiset differs from the input.
	KindNotPermutation

	// KindNotIdempotent means sorting sorted output changed it.
	KindNotIdempotent

	// KindDisagreement means a strategy run directly disagreed with the dispatcher.
	KindDisagreement
)

func (k FailureKind) String() string {
	switch k {
	case KindUnordered:
		return "unordered"
	case KindNotPermutation:
		return "not a permutation"
	case KindNotIdempotent:
		return "not idempotent"
	case KindDisagreement:
		return "disagreement"
	default:
		return "unknown"
	}
}

// Failure describes one violated property.
type Failure struct {
	Kind FailureKind

	// Strategy is the algorithm that produced the bad output.
	Strategy hyrmis.Strategy

	// Size is the input length.
	Size int

	// Index is the first offending position, or -1 when not applicable.
	Index int

	// Got and Want are the values at Index, when Index >= 0.
	Got, Want int64
}

func (f *Failure) Error() string {
	if f.Index < 0 {
		return fmt.Sprintf("verify: %s: n=%d strategy=%s", f.Kind, f.Size, f.Strategy)
	}
	return fmt.Sprintf("verify: %s: n=%d strategy=%s index=%d got=%d want=%d",
		f.Kind, f.Size, f.Strategy, f.Index, f.Got, f.Want)
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T hyrmis.Integer](data []T) bool {
	return FirstInversion(data) < 0
}

// FirstInversion returns the smallest i with data[i] > data[i+1], or -1.
func FirstInversion[T hyrmis.Integer](data []T) int {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return i - 1
		}
	}
	return -1
}

// SameMultiset reports whether a and b hold the same values with the same
// multiplicities.
func SameMultiset[T hyrmis.Integer](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// Check verifies that output is an ascending permutation of input.
// strategy is only used to label the returned *Failure.
func Check[T hyrmis.Integer](input, output []T, strategy hyrmis.Strategy) error {
	if i := FirstInversion(output); i >= 0 {
		return &Failure{
			Kind:     KindUnordered,
			Strategy: strategy,
			Size:     len(input),
			Index:    i,
			Got:      int64(output[i]),
			Want:     int64(output[i+1]),
		}
	}
	if !SameMultiset(input, output) {
		return &Failure{Kind: KindNotPermutation, Strategy: strategy, Size: len(input), Index: -1}
	}
	return nil
}

// CheckIdempotent sorts a copy of sorted with strategy and verifies nothing
// moved.
func CheckIdempotent[T hyrmis.Integer](sorted []T, strategy hyrmis.Strategy) error {
	again := hyrmis.SortWith(slices.Clone(sorted), strategy)
	if i := firstDifference(again, sorted); i >= 0 {
		return &Failure{
			Kind:     KindNotIdempotent,
			Strategy: strategy,
			Size:     len(sorted),
			Index:    i,
			Got:      int64(again[i]),
			Want:     int64(sorted[i]),
		}
	}
	return nil
}

// CheckAgreement sorts input through the dispatcher and through each
// strategy directly, and verifies all four results are identical and valid.
// input is not modified.
func CheckAgreement[T hyrmis.Integer](input []T, t hyrmis.Thresholds) error {
	return CheckAgreementConfig(input, hyrmis.Config{Thresholds: t})
}

// CheckAgreementConfig is CheckAgreement with a full hyrmis.Config. The
// Observer, if any, sees the dispatched sort only, not the direct runs.
func CheckAgreementConfig[T hyrmis.Integer](input []T, cfg hyrmis.Config) error {
	chosen := hyrmis.Choose(len(input), cfg.Thresholds)
	want := hyrmis.SortConfig(slices.Clone(input), cfg)
	if err := Check(input, want, chosen); err != nil {
		return err
	}

	for _, s := range hyrmis.Strategies {
		got := hyrmis.SortWith(slices.Clone(input), s)
		if i := firstDifference(got, want); i >= 0 {
			return &Failure{
				Kind:     KindDisagreement,
				Strategy: s,
				Size:     len(input),
				Index:    i,
				Got:      int64(got[i]),
				Want:     int64(want[i]),
			}
		}
	}
	return nil
}

// BoundarySizes returns the input sizes at which the dispatcher switches
// algorithms: lower, lower+1, upper and upper+1. Negative sizes are dropped.
func BoundarySizes(t hyrmis.Thresholds) []int {
	var sizes []int
	for _, n := range []int{t.Lower, t.Lower + 1, t.Upper, t.Upper + 1} {
		if n >= 0 {
			sizes = append(sizes, n)
		}
	}
	return sizes
}

func firstDifference[T hyrmis.Integer](a, b []T) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}
