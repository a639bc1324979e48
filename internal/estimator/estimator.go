// Package estimator implements the out-component size estimation sweep: a
// single reverse-topological pass over an event graph that produces, for
// every event (or just the roots), a probabilistic estimate of its
// out-component's event and node counts without ever materialising the
// out-component itself.
package estimator

import (
	"github.com/temponet/internal/counter"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/sketch"
	"github.com/temponet/internal/temporal"
)

// EventCounter pairs an event with a frozen counter describing its
// out-component estimate.
type EventCounter struct {
	Event   temporal.Event
	Counter *counter.Counter
}

// OutComponentSizes runs the sweep and returns one EventCounter per event
// whose in-degree reaches zero during the pass — every event if onlyRoots
// is false, only root events (those with no predecessors) if true.
// precision sets the HLL register-index width for every sketch created
// during the sweep; sketch.DefaultPrecision is a reasonable default.
func OutComponentSizes(g *eventgraph.Graph, seed uint64, precision uint, onlyRoots bool) []EventCounter {
	topo := g.Topo()

	building := make(map[temporal.Event]*counter.Counter, len(topo))
	inDegree := make(map[temporal.Event]int, len(topo))
	result := make([]EventCounter, 0, len(topo))

	for i := len(topo) - 1; i >= 0; i-- {
		e := topo[i]

		building[e] = counter.New(sketch.NewHLL(precision), sketch.NewHLL(precision))
		inDegree[e] = len(g.Predecessors(e, false))

		for _, succ := range g.Successors(e, false) {
			building[e].Merge(building[succ])

			inDegree[succ]--
			if inDegree[succ] == 0 {
				if !onlyRoots {
					result = append(result, EventCounter{Event: succ, Counter: building[succ].Snapshot()})
				}
				delete(building, succ)
				delete(inDegree, succ)
			}
		}

		building[e].Insert(e, seed)

		if inDegree[e] == 0 {
			result = append(result, EventCounter{Event: e, Counter: building[e].Snapshot()})
			delete(building, e)
			delete(inDegree, e)
		}
	}

	return result
}
