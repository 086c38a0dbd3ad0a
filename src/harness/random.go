package harness

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Rand draws the random inputs used by tests and scenario generation.
//
// Two Rand created with the same seed produce the same sequence.
type Rand struct {
	seed uint64
	src  rand.Source
	rnd  *rand.Rand
}

func NewRand(seed uint64) *Rand {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Rand{seed: seed, src: src, rnd: rand.New(src)}
}

func (r *Rand) Seed() uint64 {
	return r.seed
}

// Int returns a uniform value in [lo, hi].
func (r *Rand) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rnd.IntN(hi-lo+1)
}

// Ints returns n values, each drawn with Int(lo, hi).
func (r *Rand) Ints(n, lo, hi int) []int {
	vs := make([]int, n)
	for i := range n {
		vs[i] = r.Int(lo, hi)
	}
	return vs
}

// Count returns a uniform value in [lo, hi).
func (r *Rand) Count(lo, hi int) int {
	if hi <= lo+1 {
		return lo
	}
	return lo + r.rnd.IntN(hi-lo)
}

// Length returns a normally distributed length, rounded and clamped to [lo, hi].
func (r *Rand) Length(mean, stddev float64, lo, hi int) int {
	if stddev <= 0 {
		return clamp(int(math.Round(mean)), lo, hi)
	}
	n := distuv.Normal{Mu: mean, Sigma: stddev, Src: r.src}
	return clamp(int(math.Round(n.Rand())), lo, hi)
}

func clamp(v, lo, hi int) int {
	return int(math.Max(float64(lo), math.Min(float64(hi), float64(v))))
}
