package traversal

import (
	"github.com/temponet/internal/counter"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/temporal"
)

// OutComponent computes root's exact out-component, dispatching to
// DeterministicOutComponent when the graph's probability function is
// {0,1}-valued and GenericOutComponent otherwise.
func OutComponent(g *eventgraph.Graph, root temporal.Event, edgeSizeHint, nodeSizeHint int) *counter.Counter {
	if g.Deterministic() {
		return DeterministicOutComponent(g, root, edgeSizeHint, nodeSizeHint)
	}
	return GenericOutComponent(g, root, edgeSizeHint, nodeSizeHint)
}
