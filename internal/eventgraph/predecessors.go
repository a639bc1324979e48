package eventgraph

import (
	"sort"

	"github.com/temponet/internal/temporal"
)

// Predecessors returns the events e is adjacent from: earlier events that
// mutated a vertex e reads, filtered by the same hash-stable Bernoulli
// trial used by Successors (predecessors(a, b) and successors(a, b) agree
// on whether the edge a->b exists). With justFirst, only the latest
// (nearest) predecessor time with a surviving trial is returned, including
// all ties at that time.
func (g *Graph) Predecessors(e temporal.Event, justFirst bool) []temporal.Event {
	cands := g.candidatesByMutated(e.MutatorVerts())
	// cands is sorted ascending by (EffectTime, Less); keep only those
	// whose effect has landed strictly before e.Time() (gap > 0), then
	// walk backward so the gap only grows and p only shrinks, letting the
	// probCutoff break below skip the rest. Scanning in Time order
	// instead would desync: for directed-delayed events EffectTime order
	// can diverge from Time order, so a nearer-in-Time candidate with
	// p=0 could trigger the break before a farther-in-Time but
	// nearer-in-EffectTime candidate is ever reached.
	end := sort.Search(len(cands), func(i int) bool {
		return g.topo[cands[i]].EffectTime() >= e.Time()
	})
	sub := cands[:end]

	var result []temporal.Event
	var firstTime temporal.Time
	haveFirst := false

	for i := len(sub) - 1; i >= 0; i-- {
		cand := g.topo[sub[i]]
		if haveFirst && cand.Time() < firstTime {
			break
		}

		gap := e.Time() - cand.EffectTime()
		if gap <= 0 {
			continue
		}

		p := g.prob(cand, e, g.dt)
		if p < probCutoff {
			break
		}

		if bernoulliTrial(g.seed, cand, e, p) {
			result = append(result, cand)
			if justFirst && !haveFirst {
				firstTime = cand.Time()
				haveFirst = true
			}
		}
	}
	return result
}
