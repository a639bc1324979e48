package eventgraph

import (
	"math/rand/v2"

	"github.com/temponet/internal/temporal"
)

// combineHash folds h2 into h1 with the same mixer used throughout the
// package for seed derivation, kept local so this package doesn't need an
// exported hash-combining primitive from internal/temporal.
func combineHash(h1, h2 uint64) uint64 {
	h1 ^= h2 + 0x9E3779B97F4A7C15 + (h1 << 6) + (h1 >> 2)
	return h1
}

// bernoulliTrial decides, without any hidden state, whether the edge (a, b)
// exists: the pair's hash is folded into the graph seed to derive a
// per-pair PRNG seed, so the same (seed, a, b) always draws the same
// outcome regardless of call order — successors and predecessors are pure
// functions of (graph, event, justFirst).
func bernoulliTrial(seed uint64, a, b temporal.Event, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	pairHash := combineHash(a.Hash(seed), b.Hash(seed))
	mixed := seed ^ (pairHash + 0x9E3779B97F4A7C15 + (seed << 6) + (seed >> 2))
	src := rand.NewPCG(mixed, pairHash)
	return rand.New(src).Float64() < p
}
