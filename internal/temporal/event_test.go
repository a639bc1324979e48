package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndirectedNormalisesEndpointOrder(t *testing.T) {
	a := NewUndirected(5, 2, 1.0)
	b := NewUndirected(2, 5, 1.0)
	assert.True(t, a.Equal(b))
	assert.Equal(t, Vertex(2), a.V1)
	assert.Equal(t, Vertex(5), a.V2)
}

func TestUndirectedMutatorAndMutatedShareBothEndpoints(t *testing.T) {
	e := NewUndirected(1, 2, 0.0)
	assert.ElementsMatch(t, []Vertex{1, 2}, e.MutatorVerts())
	assert.ElementsMatch(t, []Vertex{1, 2}, e.MutatedVerts())
	assert.Equal(t, e.Time(), e.EffectTime())
}

func TestDirectedMutatorIsSourceMutatedIsTarget(t *testing.T) {
	e := NewDirected(1, 2, 0.0)
	require.Equal(t, []Vertex{1}, e.MutatorVerts())
	require.Equal(t, []Vertex{2}, e.MutatedVerts())
}

func TestDirectedDelayedEffectTimeIncludesDelay(t *testing.T) {
	e := NewDirectedDelayed(1, 2, 10.0, 2.5)
	assert.Equal(t, Time(10.0), e.Time())
	assert.Equal(t, Time(12.5), e.EffectTime())
}

func TestIsSelfLoop(t *testing.T) {
	assert.True(t, IsSelfLoop(NewUndirected(3, 3, 0)))
	assert.True(t, IsSelfLoop(NewDirected(4, 4, 0)))
	assert.False(t, IsSelfLoop(NewDirected(4, 5, 0)))
}

func TestLessOrdersByTimeThenEndpoints(t *testing.T) {
	a := NewDirected(1, 2, 1.0)
	b := NewDirected(1, 2, 2.0)
	c := NewDirected(1, 3, 1.0)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(c))
}

func TestHashIsStableAndSeedSensitive(t *testing.T) {
	e := NewUndirected(1, 2, 3.0)
	h1 := e.Hash(42)
	h2 := e.Hash(42)
	h3 := e.Hash(43)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestEventValuesDistinguishVariants(t *testing.T) {
	u := NewUndirected(1, 2, 3.0)
	d := NewDirected(1, 2, 3.0)
	assert.NotEqual(t, u, Event(d))
}
