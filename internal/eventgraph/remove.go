package eventgraph

import "github.com/temponet/internal/temporal"

// RemoveEvents drops the given events from the graph and rebuilds its
// adjacency indices. Events not present in the graph are ignored.
func (g *Graph) RemoveEvents(events []temporal.Event) {
	drop := make(map[temporal.Event]struct{}, len(events))
	for _, e := range events {
		drop[e] = struct{}{}
	}

	kept := g.topo[:0]
	for _, e := range g.topo {
		if _, remove := drop[e]; !remove {
			kept = append(kept, e)
		}
	}
	g.topo = kept
	g.buildIndices()
}
