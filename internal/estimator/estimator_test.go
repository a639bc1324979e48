package estimator

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

func TestOutComponentSizesCoversEveryEventWhenNotRootsOnly(t *testing.T) {
	g, err := eventgraph.New(chain(5), 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)

	ests := OutComponentSizes(g, 1, 10, false)
	assert.Len(t, ests, 5)
}

func TestOutComponentSizesOnlyRootsReturnsFewer(t *testing.T) {
	g, err := eventgraph.New(chain(5), 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)

	all := OutComponentSizes(g, 1, 10, false)
	roots := OutComponentSizes(g, 1, 10, true)
	assert.Less(t, len(roots), len(all))
}

func TestLastEventInChainHasSingleEventOutComponent(t *testing.T) {
	g, err := eventgraph.New(chain(4), 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)

	ests := OutComponentSizes(g, 1, 10, false)
	last := temporal.NewDirected(3, 4, 3)
	for _, ec := range ests {
		if ec.Event.Equal(last) {
			assert.InDelta(t, 1.0, ec.Counter.Events().Estimate(), 0.5)
		}
	}
}

func TestFirstEventInChainOutComponentCoversWholeChain(t *testing.T) {
	g, err := eventgraph.New(chain(6), 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)

	ests := OutComponentSizes(g, 1, 10, true)
	require.Len(t, ests, 1, "a pure chain has exactly one root")
	assert.InDelta(t, 6.0, ests[0].Counter.Events().Estimate(), 1.0)
}
