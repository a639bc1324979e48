package eventgraph

import (
	"math"

	"github.com/temponet/internal/temporal"
)

// ProbFunc gives the probability that b is adjacent to a in the event
// graph, given the graph's delta-t parameter. Both probability functions
// below are non-increasing in (b.Time() - a.EffectTime()) once that gap
// turns positive, which the successors/predecessors scans rely on to
// cut a candidate search short.
type ProbFunc func(a, b temporal.Event, dt temporal.Time) float64

// DeterministicProb returns 1 if b occurs strictly after a's effect and
// within dt of it, 0 otherwise — a hard cutoff rather than a decay curve.
func DeterministicProb(a, b temporal.Event, dt temporal.Time) float64 {
	gap := b.Time() - a.EffectTime()
	if gap > 0 && gap < dt {
		return 1
	}
	return 0
}

// ExponentialProb treats dt as the expected value of the exponential decay
// of adjacency probability: an edge closer in time to a's effect is more
// likely than one far from it, with mean gap dt.
func ExponentialProb(a, b temporal.Event, dt temporal.Time) float64 {
	gap := b.Time() - a.EffectTime()
	if gap < 0 {
		return 0
	}
	lambda := 1.0 / float64(dt)
	return lambda * math.Exp(-lambda*float64(gap))
}

// probCutoff is the probability below which a candidate (and, given
// ProbFunc's monotonic decay, everything further from a in time) is
// treated as unreachable and the scan stops.
const probCutoff = 1e-20
