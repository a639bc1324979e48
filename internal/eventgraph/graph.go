// Package eventgraph builds the event-graph index over a temporal network:
// a DAG whose nodes are events and whose edges are hash-stable, randomly
// sampled adjacencies, enumerated lazily via Successors/Predecessors rather
// than materialised.
package eventgraph

import (
	"fmt"
	"sort"

	"github.com/temponet/internal/temporal"
)

// Graph indexes a slice of events for adjacency queries. It never mutates
// after construction (aside from RemoveEvents rebuilding its indices), so
// Successors and Predecessors are pure functions of (Graph, event,
// justFirst).
type Graph struct {
	topo          []temporal.Event
	dt            temporal.Time
	prob          ProbFunc
	deterministic bool
	seed          uint64

	// byMutator[v] holds, ascending by topo position (equivalently, by
	// Time since topo is Time-sorted), the indices of events where v is a
	// MutatorVert — candidates for being the successor side of an edge
	// rooted at a vertex v was mutated by.
	byMutator map[temporal.Vertex][]int
	// byMutated[v] is the mirror image, indexed by MutatedVerts, used to
	// answer Predecessors. Unlike byMutator, it is sorted by
	// (EffectTime, Less) rather than topo position: a candidate's
	// relevance to Predecessors is governed by when its effect lands, not
	// by its own Time, and for directed-delayed events the two orders
	// diverge.
	byMutated map[temporal.Vertex][]int
}

// New builds a Graph over events. dt is the graph's delta-t parameter, prob
// the adjacency probability function (DeterministicProb or ExponentialProb
// are the two built in), deterministic whether prob is {0,1}-valued (this
// unlocks the exact SI-style traversal instead of generic BFS), and seed
// the graph's Bernoulli-sampling seed. Self-loop events are rejected: event
// list readers should already have dropped them.
func New(events []temporal.Event, dt temporal.Time, prob ProbFunc, deterministic bool, seed uint64) (*Graph, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDt, dt)
	}
	if prob == nil {
		return nil, fmt.Errorf("eventgraph: prob function must not be nil")
	}

	topo := make([]temporal.Event, len(events))
	copy(topo, events)
	sort.Slice(topo, func(i, j int) bool { return topo[i].Less(topo[j]) })

	for i, e := range topo {
		if temporal.IsSelfLoop(e) {
			return nil, fmt.Errorf("%w at position %d: %v", ErrSelfLoop, i, e)
		}
		if i > 0 && !topo[i-1].Less(e) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEvent, e)
		}
	}

	g := &Graph{
		topo:          topo,
		dt:            dt,
		prob:          prob,
		deterministic: deterministic,
		seed:          seed,
	}
	g.buildIndices()
	return g, nil
}

func (g *Graph) buildIndices() {
	g.byMutator = make(map[temporal.Vertex][]int)
	g.byMutated = make(map[temporal.Vertex][]int)
	for i, e := range g.topo {
		for _, v := range e.MutatorVerts() {
			g.byMutator[v] = append(g.byMutator[v], i)
		}
		for _, v := range e.MutatedVerts() {
			g.byMutated[v] = append(g.byMutated[v], i)
		}
	}
	for _, idxs := range g.byMutated {
		sort.Slice(idxs, func(i, j int) bool {
			return g.lessByEffectTime(idxs[i], idxs[j])
		})
	}
}

// lessByEffectTime orders two topo indices by (EffectTime, Less) — the
// order Predecessors scans byMutated in.
func (g *Graph) lessByEffectTime(i, j int) bool {
	a, b := g.topo[i], g.topo[j]
	if a.EffectTime() != b.EffectTime() {
		return a.EffectTime() < b.EffectTime()
	}
	return a.Less(b)
}

// Topo is the graph's events in ascending time order (a valid topological
// order of the induced DAG, since edges only ever run forward in time).
func (g *Graph) Topo() []temporal.Event { return g.topo }

// Dt is the graph's delta-t parameter.
func (g *Graph) Dt() temporal.Time { return g.dt }

// Seed is the graph's Bernoulli-sampling seed.
func (g *Graph) Seed() uint64 { return g.seed }

// Deterministic reports whether the adjacency probability function is
// {0,1}-valued, which lets callers use the exact SI-style traversal in
// place of generic BFS.
func (g *Graph) Deterministic() bool { return g.deterministic }

// indexOf locates e's position in topo via binary search on the total
// order Less defines. e is assumed to be a member of the graph.
func (g *Graph) indexOf(e temporal.Event) int {
	return sort.Search(len(g.topo), func(i int) bool {
		return !g.topo[i].Less(e)
	})
}

// IndexOf exposes indexOf for callers (such as the weakly-connected-
// components pass) that need to map events back to their topo position
// without re-deriving the binary search themselves.
func (g *Graph) IndexOf(e temporal.Event) int {
	return g.indexOf(e)
}
