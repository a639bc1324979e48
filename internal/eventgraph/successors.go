package eventgraph

import (
	"sort"

	"github.com/temponet/internal/temporal"
)

func (g *Graph) candidatesByMutator(verts []temporal.Vertex) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, v := range verts {
		for _, idx := range g.byMutator[v] {
			if _, ok := seen[idx]; !ok {
				seen[idx] = struct{}{}
				out = append(out, idx)
			}
		}
	}
	sort.Ints(out)
	return out
}

// candidatesByMutated unions the byMutated buckets for verts (each already
// sorted by (EffectTime, Less)) and re-sorts the union by the same key, so
// Predecessors can scan it backward with a monotonically shrinking
// adjacency probability regardless of which vertex contributed a
// candidate.
func (g *Graph) candidatesByMutated(verts []temporal.Vertex) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, v := range verts {
		for _, idx := range g.byMutated[v] {
			if _, ok := seen[idx]; !ok {
				seen[idx] = struct{}{}
				out = append(out, idx)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return g.lessByEffectTime(out[i], out[j])
	})
	return out
}

// Successors returns the events e is adjacent to: later events that read a
// vertex e just mutated, filtered by a hash-stable Bernoulli trial on e's
// probability function. If justFirst is true, the scan stops as soon as it
// has found the earliest successor time with at least one surviving trial,
// returning every tied successor at that time but none later.
func (g *Graph) Successors(e temporal.Event, justFirst bool) []temporal.Event {
	pos := g.indexOf(e)
	cands := g.candidatesByMutator(e.MutatedVerts())
	start := sort.SearchInts(cands, pos+1)

	var result []temporal.Event
	var firstTime temporal.Time
	haveFirst := false

	for _, idx := range cands[start:] {
		cand := g.topo[idx]
		if haveFirst && cand.Time() > firstTime {
			break
		}

		gap := cand.Time() - e.EffectTime()
		if gap <= 0 {
			continue
		}

		p := g.prob(e, cand, g.dt)
		if p < probCutoff {
			break
		}

		if bernoulliTrial(g.seed, e, cand, p) {
			result = append(result, cand)
			if justFirst && !haveFirst {
				firstTime = cand.Time()
				haveFirst = true
			}
		}
	}
	return result
}
