package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/temporal"
)

func chain(n int) []temporal.Event {
	events := make([]temporal.Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, temporal.NewDirected(uint32(i), uint32(i+1), temporal.Time(i)))
	}
	return events
}

func branching() []temporal.Event {
	return []temporal.Event{
		temporal.NewDirected(0, 1, 0),
		temporal.NewDirected(1, 2, 1),
		temporal.NewDirected(1, 3, 1),
		temporal.NewDirected(2, 4, 2),
		temporal.NewDirected(3, 4, 3),
	}
}

func TestGenericOutComponentFollowsChain(t *testing.T) {
	g, err := eventgraph.New(chain(5), 10, eventgraph.DeterministicProb, false, 1)
	require.NoError(t, err)

	root := temporal.NewDirected(0, 1, 0)
	out := GenericOutComponent(g, root, 0, 0)
	assert.Equal(t, 5.0, out.Events().Estimate())
}

func TestGenericOutComponentOnBranchingGraph(t *testing.T) {
	g, err := eventgraph.New(branching(), 10, eventgraph.DeterministicProb, false, 1)
	require.NoError(t, err)

	root := temporal.NewDirected(0, 1, 0)
	out := GenericOutComponent(g, root, 0, 0)
	assert.Equal(t, 5.0, out.Events().Estimate())
}

func TestDeterministicMatchesGenericOnSameGraph(t *testing.T) {
	g, err := eventgraph.New(branching(), 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)

	for _, root := range g.Topo() {
		det := DeterministicOutComponent(g, root, 0, 0)
		gen := GenericOutComponent(g, root, 0, 0)
		assert.Equal(t, gen.Events().Estimate(), det.Events().Estimate(),
			"deterministic and generic traversal must agree on out-component size for root %v", root)
		assert.Equal(t, gen.Nodes().Estimate(), det.Nodes().Estimate())
	}
}

func TestOutComponentDispatchesOnDeterministic(t *testing.T) {
	detGraph, err := eventgraph.New(chain(3), 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)
	root := temporal.NewDirected(0, 1, 0)
	assert.Equal(t, 3.0, OutComponent(detGraph, root, 0, 0).Events().Estimate())

	genGraph, err := eventgraph.New(chain(3), 10, eventgraph.DeterministicProb, false, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, OutComponent(genGraph, root, 0, 0).Events().Estimate())
}

func TestOutComponentOfSinkEventIsJustItself(t *testing.T) {
	g, err := eventgraph.New(chain(4), 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)

	sink := temporal.NewDirected(3, 4, 3)
	out := OutComponent(g, sink, 0, 0)
	assert.Equal(t, 1.0, out.Events().Estimate())
	assert.Equal(t, 2.0, out.Nodes().Estimate(), "a directed event spans its source and its target")
}

func TestDeterministicHandlesDelayedEvents(t *testing.T) {
	events := []temporal.Event{
		temporal.NewDirectedDelayed(0, 1, 0, 2),
		temporal.NewDirected(1, 2, 3),
		temporal.NewDirected(2, 3, 4),
	}
	g, err := eventgraph.New(events, 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)

	root := events[0]
	out := DeterministicOutComponent(g, root, 0, 0)
	assert.Equal(t, 3.0, out.Events().Estimate())
}
