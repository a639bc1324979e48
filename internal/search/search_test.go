package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temponet/internal/estimator"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/sketch"
	"github.com/temponet/internal/temporal"
	"github.com/temponet/internal/traversal"
	"github.com/temponet/pkg/parallel"
)

func chain(n int) []temporal.Event {
	events := make([]temporal.Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, temporal.NewDirected(uint32(i), uint32(i+1), temporal.Time(i)))
	}
	return events
}

func star(leaves int) []temporal.Event {
	events := make([]temporal.Event, 0, leaves+1)
	events = append(events, temporal.NewDirected(0, 1, 0))
	for i := 0; i < leaves; i++ {
		events = append(events, temporal.NewDirected(1, uint32(2+i), temporal.Time(1+i)))
	}
	return events
}

func TestLargestOutComponentPicksTheChainRoot(t *testing.T) {
	events := chain(6)
	g, err := eventgraph.New(events, 10, eventgraph.DeterministicProb, true, 7)
	require.NoError(t, err)

	sweep := estimator.OutComponentSizes(g, 7, sketch.DefaultPrecision, true)
	require.NotEmpty(t, sweep)

	result, err := LargestOutComponent(context.Background(), g, sweep, MeasureEvents, 0.05, parallel.DefaultPoolConfig())
	require.NoError(t, err)
	assert.Equal(t, 6.0, result.Component.Events().Estimate())
}

func TestLargestOutComponentFindsTheWidestStar(t *testing.T) {
	narrow := star(1)
	wide := star(5)
	// shift the wide star's vertices so the two components don't collide
	shifted := make([]temporal.Event, 0, len(narrow)+len(wide))
	shifted = append(shifted, narrow...)
	for _, e := range wide {
		d := e.(temporal.Directed)
		shifted = append(shifted, temporal.NewDirected(d.V1+100, d.V2+100, d.T))
	}

	g, err := eventgraph.New(shifted, 10, eventgraph.DeterministicProb, true, 3)
	require.NoError(t, err)

	sweep := estimator.OutComponentSizes(g, 3, sketch.DefaultPrecision, true)
	require.NotEmpty(t, sweep)

	result, err := LargestOutComponent(context.Background(), g, sweep, MeasureEvents, 0.05, parallel.DefaultPoolConfig())
	require.NoError(t, err)

	exactBest := 0.0
	for _, e := range g.Topo() {
		size := traversal.OutComponent(g, e, 0, 0).Events().Estimate()
		if size > exactBest {
			exactBest = size
		}
	}
	assert.Equal(t, exactBest, result.Component.Events().Estimate())
}

func TestLargestOutComponentRejectsBadSignificance(t *testing.T) {
	events := chain(3)
	g, err := eventgraph.New(events, 10, eventgraph.DeterministicProb, true, 1)
	require.NoError(t, err)
	sweep := estimator.OutComponentSizes(g, 1, sketch.DefaultPrecision, true)

	_, err = LargestOutComponent(context.Background(), g, sweep, MeasureEvents, 0, parallel.DefaultPoolConfig())
	assert.Error(t, err)

	_, err = LargestOutComponent(context.Background(), g, sweep, MeasureEvents, 1.5, parallel.DefaultPoolConfig())
	assert.Error(t, err)
}

func TestLargestOutComponentRejectsEmptyCandidates(t *testing.T) {
	_, err := LargestOutComponent(context.Background(), nil, nil, MeasureEvents, 0.05, parallel.DefaultPoolConfig())
	assert.Error(t, err)
}

func TestLongestLifetimePicksWidestWindow(t *testing.T) {
	events := chain(6)
	g, err := eventgraph.New(events, 10, eventgraph.DeterministicProb, true, 5)
	require.NoError(t, err)

	sweep := estimator.OutComponentSizes(g, 5, sketch.DefaultPrecision, true)
	require.NotEmpty(t, sweep)

	result, err := LongestLifetime(sweep)
	require.NoError(t, err)

	maxDur := temporal.Time(0)
	for _, cand := range sweep {
		lo, hi, ok := cand.Counter.Lifetime()
		require.True(t, ok)
		if hi-lo > maxDur {
			maxDur = hi - lo
		}
	}
	assert.Equal(t, maxDur, result.Duration)
}

func TestLongestLifetimeRejectsEmptyCandidates(t *testing.T) {
	_, err := LongestLifetime(nil)
	assert.Error(t, err)
}
