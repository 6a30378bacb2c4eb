package verify

import (
	"context"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/zeebo/errs/v2"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-hyrmis/hyrmis"
	"github.com/ajroetker/go-hyrmis/hyrmis/contrib/workerpool"
)

// agreementEvery makes every n-th trial an agreement check at a dispatch
// boundary size instead of a random size.
const agreementEvery = 8

// MaxTrialLen bounds TrialConfig.MaxLen.
const MaxTrialLen = 1 << 30

// TrialConfig configures RunTrials.
type TrialConfig struct {
	// Trials is the number of sequences to sort.
	Trials int

	// MaxLen bounds the random sequence length, inclusive.
	MaxLen int

	// Min and Max bound the element values, inclusive.
	Min, Max int64

	// Workers is the pool size; <= 0 uses GOMAXPROCS.
	Workers int

	// Seed makes the run reproducible when non-zero.
	Seed uint64

	// Sort is the configuration under test. Its Observer, if any, is called
	// from several goroutines.
	Sort hyrmis.Config

	// Shapes to cycle through; empty means all of them.
	Shapes []Shape
}

// DefaultTrialConfig returns a TrialConfig that reaches all three strategies.
func DefaultTrialConfig() TrialConfig {
	return TrialConfig{
		Trials: 1000,
		MaxLen: 4096,
		Min:    -10000,
		Max:    10000,
		Sort:   hyrmis.DefaultConfig(),
	}
}

// Validate reports a TrialConfig that RunTrials would reject.
func (c TrialConfig) Validate() error {
	switch {
	case c.Trials < 0:
		return errs.Errorf("trials must not be negative: %d", c.Trials)
	case c.MaxLen < 0:
		return errs.Errorf("max length must not be negative: %d", c.MaxLen)
	case c.MaxLen > MaxTrialLen:
		return errs.Errorf("max length %d exceeds limit %d", c.MaxLen, MaxTrialLen)
	case c.Min > c.Max:
		return errs.Errorf("min %d exceeds max %d", c.Min, c.Max)
	}
	return nil
}

// Report summarizes a RunTrials call.
type Report struct {
	Trials     int
	Elements   int
	ByStrategy map[hyrmis.Strategy]int
	Failures   []error
	Elapsed    time.Duration
}

// Err combines every failure into one error, or returns nil.
func (r Report) Err() error {
	return errs.Combine(r.Failures...)
}

// tally is one worker's private counters, padded so neighbouring workers do
// not share a cache line.
type tally struct {
	_          cpu.CacheLinePad
	trials     int
	elements   int
	byStrategy [3]int
	failures   []error
	_          cpu.CacheLinePad
}

// RunTrials sorts cfg.Trials generated sequences with cfg.Sort, checking
// every result with Check and CheckIdempotent. Every eighth trial instead
// uses a dispatch boundary size and runs CheckAgreementConfig.
//
// Property failures are collected in the Report, not returned. The error is
// non-nil only for an invalid cfg or a canceled ctx; the partial Report is
// still returned in the latter case.
func RunTrials(ctx context.Context, cfg TrialConfig) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	shapes := cfg.Shapes
	if len(shapes) == 0 {
		shapes = Shapes
	}
	boundaries := BoundarySizes(cfg.Sort.Thresholds)

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	tallies := make([]tally, pool.NumWorkers())
	start := time.Now()

	runErr := pool.Run(ctx, cfg.Trials, func(worker, i int) {
		t := &tallies[worker]
		gen := NewGenerator(trialSeed(cfg.Seed, i))
		shape := shapes[i%len(shapes)]

		n := gen.Intn(cfg.MaxLen + 1)
		agreement := i%agreementEvery == 0 && len(boundaries) > 0
		if agreement {
			n = boundaries[(i/agreementEvery)%len(boundaries)]
		}
		input := gen.Shaped(shape, n, cfg.Min, cfg.Max)

		strategy := hyrmis.Choose(n, cfg.Sort.Thresholds)
		t.trials++
		t.elements += n
		t.byStrategy[strategy]++

		if agreement {
			if err := CheckAgreementConfig(input, cfg.Sort); err != nil {
				t.failures = append(t.failures, err)
			}
			return
		}

		output := hyrmis.SortConfig(slices.Clone(input), cfg.Sort)
		if err := Check(input, output, strategy); err != nil {
			t.failures = append(t.failures, err)
			return
		}
		if err := CheckIdempotent(output, strategy); err != nil {
			t.failures = append(t.failures, err)
		}
	})

	report := Report{
		Trials:     lo.SumBy(tallies, func(t tally) int { return t.trials }),
		Elements:   lo.SumBy(tallies, func(t tally) int { return t.elements }),
		ByStrategy: make(map[hyrmis.Strategy]int, len(hyrmis.Strategies)),
		Failures:   lo.FlatMap(tallies, func(t tally, _ int) []error { return t.failures }),
		Elapsed:    time.Since(start),
	}
	for _, s := range hyrmis.Strategies {
		report.ByStrategy[s] = lo.SumBy(tallies, func(t tally) int { return t.byStrategy[s] })
	}
	return report, errs.Wrap(runErr)
}

// trialSeed derives a per-trial seed so a seeded run does not depend on how
// trials are spread across workers.
func trialSeed(seed uint64, trial int) uint64 {
	if seed == 0 {
		return 0
	}
	// splitmix64 finalizer
	z := seed + uint64(trial+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		z = 1
	}
	return z
}
