package verify

import (
	"slices"

	"github.com/zeebo/mwc"
)

// Shape selects the arrangement of a generated sequence.
type Shape int

const (
	// ShapeRandom draws every element independently.
	ShapeRandom Shape = iota

	// ShapeSorted is ascending.
	ShapeSorted

	// ShapeReversed is descending.
	ShapeReversed

	// ShapeFewUnique draws from at most eight distinct values.
	ShapeFewUnique
)

// Shapes lists every Shape.
var Shapes = []Shape{ShapeRandom, ShapeSorted, ShapeReversed, ShapeFewUnique}

func (s Shape) String() string {
	switch s {
	case ShapeRandom:
		return "random"
	case ShapeSorted:
		return "sorted"
	case ShapeReversed:
		return "reversed"
	case ShapeFewUnique:
		return "few-unique"
	default:
		return "unknown"
	}
}

// Generator produces pseudo-random integer sequences. It is not safe for
// concurrent use.
type Generator struct {
	next  func() uint64
	nextn func(uint64) uint64
}

// NewGenerator returns a Generator. A zero seed picks a random stream;
// any other seed makes the output reproducible.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		rng := mwc.Rand()
		return &Generator{next: rng.Uint64, nextn: rng.Uint64n}
	}
	rng := mwc.New(seed, seed)
	return &Generator{next: rng.Uint64, nextn: rng.Uint64n}
}

// Intn returns a value in [0, n). n must be positive.
func (g *Generator) Intn(n int) int {
	return int(g.nextn(uint64(n)))
}

// Int64 returns a value in [lo, hi].
func (g *Generator) Int64(lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// [MinInt64, MaxInt64]
		return int64(g.next())
	}
	return int64(uint64(lo) + g.nextn(span))
}

// Ints returns n values drawn uniformly from [lo, hi].
func (g *Generator) Ints(n int, lo, hi int64) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = g.Int64(lo, hi)
	}
	return data
}

// Shaped returns n values from [lo, hi] arranged according to shape.
func (g *Generator) Shaped(shape Shape, n int, lo, hi int64) []int64 {
	switch shape {
	case ShapeSorted:
		data := g.Ints(n, lo, hi)
		slices.Sort(data)
		return data
	case ShapeReversed:
		data := g.Ints(n, lo, hi)
		slices.Sort(data)
		slices.Reverse(data)
		return data
	case ShapeFewUnique:
		pool := g.Ints(8, lo, hi)
		data := make([]int64, n)
		for i := range data {
			data[i] = pool[g.Intn(len(pool))]
		}
		return data
	default:
		return g.Ints(n, lo, hi)
	}
}
