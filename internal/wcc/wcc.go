// Package wcc computes weakly connected components of an event graph:
// groups of events reachable from one another by following successor
// edges in either direction, ignoring the direction itself.
package wcc

import (
	"sort"

	"github.com/temponet/internal/counter"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/sketch"
	"github.com/temponet/internal/temporal"
	"github.com/temponet/pkg/collections"
)

// Component is one weakly connected component: the events it contains, in
// topo order, plus the exact node count and [tMin, tMax] lifetime those
// events span.
type Component struct {
	Events    []temporal.Event
	NodeCount int
	TMin      temporal.Time
	TMax      temporal.Time
}

// Compute unions every event with each of its successors via a disjoint
// set over topo indices, then reads the resulting groups back out as
// per-component event slices, each paired with an exact counter built over
// its own events for the node count and lifetime. includeSingletons
// controls whether components with a single event (no successors and no
// predecessors) are included in the result.
func Compute(g *eventgraph.Graph, includeSingletons bool) []Component {
	topo := g.Topo()
	dsu := collections.NewDisjointSet(len(topo))

	for i, e := range topo {
		for _, succ := range g.Successors(e, false) {
			j := g.IndexOf(succ)
			dsu.Union(i, j)
		}
	}

	groups := dsu.Groups()
	components := make([]Component, 0, len(groups))
	for _, indices := range groups {
		if !includeSingletons && len(indices) == 1 {
			continue
		}
		sort.Ints(indices)
		events := make([]temporal.Event, len(indices))
		c := counter.New(sketch.NewExact(len(indices)), sketch.NewExact(len(indices)))
		for k, idx := range indices {
			events[k] = topo[idx]
			c.Insert(topo[idx], g.Seed())
		}
		tMin, tMax, _ := c.Lifetime()
		components = append(components, Component{
			Events:    events,
			NodeCount: int(c.Nodes().Estimate()),
			TMin:      tMin,
			TMax:      tMax,
		})
	}

	// Groups() iterates a map, so order component-to-component isn't
	// reproducible on its own; sort by each component's earliest event so
	// repeated runs over the same graph produce the same output order.
	sort.Slice(components, func(i, j int) bool {
		return components[i].Events[0].Less(components[j].Events[0])
	})

	return components
}

// Sizes returns just the event count of each component, in the same order
// Compute would return them, for callers that only need the size
// distribution (e.g. the weakly-component-sizes output file).
func Sizes(g *eventgraph.Graph, includeSingletons bool) []int {
	components := Compute(g, includeSingletons)
	sizes := make([]int, len(components))
	for i, c := range components {
		sizes[i] = len(c.Events)
	}
	return sizes
}
