// Package traversal computes exact out-components, either with a generic
// BFS that works for any adjacency probability function, or — when the
// graph's probability function is deterministic — with a specialised
// SI-style sweep that avoids queueing every individual successor.
package traversal

import (
	"github.com/temponet/internal/counter"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/sketch"
	"github.com/temponet/internal/temporal"
	"github.com/temponet/pkg/collections"
)

// GenericOutComponent computes root's exact out-component by breadth-first
// search over Successors, for any adjacency probability function.
// edgeSizeHint and nodeSizeHint, if known (e.g. from the estimation sweep),
// preallocate the exact sketches to avoid rehashing as the traversal grows.
func GenericOutComponent(g *eventgraph.Graph, root temporal.Event, edgeSizeHint, nodeSizeHint int) *counter.Counter {
	seed := g.Seed()
	events := sketch.NewExact(edgeSizeHint)
	out := counter.New(events, sketch.NewExact(nodeSizeHint))
	out.Insert(root, seed)

	queue := collections.NewQueue[temporal.Event](edgeSizeHint)
	queue.Enqueue(root)

	for {
		e, ok := queue.Dequeue()
		if !ok {
			break
		}
		for _, s := range g.Successors(e, false) {
			if events.Contains(s.Hash(seed)) {
				continue
			}
			out.Insert(s, seed)
			queue.Enqueue(s)
		}
	}

	return out
}
