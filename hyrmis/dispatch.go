package hyrmis

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zeebo/errs/v2"
)

// Strategy identifies one of the three sorting algorithms the dispatcher can
// select.
type Strategy int

const (
	// StrategyInsertion sorts in place with insertion sort.
	StrategyInsertion Strategy = iota

	// StrategyMerge sorts with top-down merge sort.
	StrategyMerge

	// StrategyRadix sorts with LSD decimal radix sort.
	StrategyRadix
)

// Strategies lists every Strategy in dispatch order.
var Strategies = []Strategy{StrategyInsertion, StrategyMerge, StrategyRadix}

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyInsertion:
		return "insertion"
	case StrategyMerge:
		return "merge"
	case StrategyRadix:
		return "radix"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a name produced by Strategy.String back into a
// Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "insertion":
		return StrategyInsertion, nil
	case "merge":
		return StrategyMerge, nil
	case "radix":
		return StrategyRadix, nil
	}
	return 0, errs.Errorf("unknown strategy: %q", name)
}

// Thresholds configures the dispatch boundaries.
type Thresholds struct {
	// Upper is the largest input handled by merge sort. Larger inputs use radix sort.
	Upper int

	// Lower is the largest input handled by insertion sort.
	Lower int
}

var (
	// DefaultThresholds are the thresholds used by Sort.
	DefaultThresholds = Thresholds{Upper: 1000, Lower: 16}

	// TunedThresholds are the thresholds the native build was tuned to.
	TunedThresholds = Thresholds{Upper: 2048, Lower: 32}
)

// String formats the thresholds as "lower/upper".
func (t Thresholds) String() string {
	return fmt.Sprintf("%d/%d", t.Lower, t.Upper)
}

// Validate reports thresholds that disable one of the algorithms: negative
// values or a lower threshold above the upper one. The dispatcher never calls
// Validate; such pairs still sort correctly.
func (t Thresholds) Validate() error {
	switch {
	case t.Lower < 0:
		return errs.Errorf("lower threshold %d is negative: insertion sort never runs", t.Lower)
	case t.Upper < 0:
		return errs.Errorf("upper threshold %d is negative: merge sort never runs", t.Upper)
	case t.Lower > t.Upper:
		return errs.Errorf("lower threshold %d exceeds upper threshold %d: merge sort never runs", t.Lower, t.Upper)
	}
	return nil
}

// Choose returns the strategy the dispatcher runs for an input of length n.
// The two comparisons are independent, so any (upper, lower) pair is accepted.
func Choose(n int, t Thresholds) Strategy {
	if n <= t.Lower {
		return StrategyInsertion
	} else if n <= t.Upper {
		return StrategyMerge
	}
	return StrategyRadix
}

// Environment variables read by ThresholdsFromEnv.
const (
	EnvUpperThreshold = "HYRMIS_UPPER_THRESHOLD"
	EnvLowerThreshold = "HYRMIS_LOWER_THRESHOLD"
)

// ThresholdsFromEnv overrides base with HYRMIS_UPPER_THRESHOLD and
// HYRMIS_LOWER_THRESHOLD when they are set. Values are not validated beyond
// being integers.
func ThresholdsFromEnv(base Thresholds) (Thresholds, error) {
	t := base
	if err := envInt(EnvUpperThreshold, &t.Upper); err != nil {
		return base, err
	}
	if err := envInt(EnvLowerThreshold, &t.Lower); err != nil {
		return base, err
	}
	return t, nil
}

func envInt(name string, dst *int) error {
	val := strings.TrimSpace(os.Getenv(name))
	if val == "" {
		return nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return errs.Errorf("invalid %s=%q: %w", name, val, err)
	}
	*dst = v
	return nil
}
