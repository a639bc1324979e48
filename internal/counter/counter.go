// Package counter pairs an event-cardinality sketch with a node-cardinality
// sketch and the event lifetime they span, the unit of bookkeeping the
// estimator, the traversals, and the search all merge up an event graph.
package counter

import (
	"github.com/temponet/internal/sketch"
	"github.com/temponet/internal/temporal"
)

// Counter tracks, for some set of events, how many distinct events and how
// many distinct vertices it contains, plus the [tMin, tMax] window those
// events span. The underlying sketches can be exact (internal/sketch.Exact,
// for traversals that need real membership) or probabilistic
// (internal/sketch.HLL, for the estimation sweep and search) — Counter
// itself is agnostic.
type Counter struct {
	events sketch.Sketch
	nodes  sketch.Sketch
	tMin   temporal.Time
	tMax   temporal.Time
	has    bool
}

// New builds a counter over the given (initially empty) event and node
// sketches.
func New(events, nodes sketch.Sketch) *Counter {
	return &Counter{events: events, nodes: nodes}
}

// Insert adds one event to the counter: the event itself into the event
// sketch (hashed with seed), each of its endpoints — MutatorVerts ∪
// MutatedVerts — into the node sketch, and widens the lifetime window to
// include the event. Inserting only MutatedVerts would undercount
// Directed/DirectedDelayed events, whose tail (MutatorVerts) never appears
// as a MutatedVert of that same event.
func (c *Counter) Insert(e temporal.Event, seed uint64) {
	c.events.Insert(e.Hash(seed))
	for _, v := range e.MutatorVerts() {
		c.nodes.Insert(temporal.HashVertex(v, seed))
	}
	for _, v := range e.MutatedVerts() {
		c.nodes.Insert(temporal.HashVertex(v, seed))
	}
	c.widen(e.Time())
	c.widen(e.EffectTime())
}

func (c *Counter) widen(t temporal.Time) {
	if !c.has {
		c.tMin, c.tMax, c.has = t, t, true
		return
	}
	if t < c.tMin {
		c.tMin = t
	}
	if t > c.tMax {
		c.tMax = t
	}
}

// Merge folds other's events, nodes, and lifetime into the receiver. other
// is left unmodified.
func (c *Counter) Merge(other *Counter) {
	c.events.Merge(other.events)
	c.nodes.Merge(other.nodes)
	if !other.has {
		return
	}
	c.widen(other.tMin)
	c.widen(other.tMax)
}

// Events is the event-cardinality sketch.
func (c *Counter) Events() sketch.Sketch { return c.events }

// Nodes is the node-cardinality sketch.
func (c *Counter) Nodes() sketch.Sketch { return c.nodes }

// Lifetime returns the [min, max] timestamp this counter's events span. The
// second return is false if the counter has never had an event inserted or
// merged in.
func (c *Counter) Lifetime() (lo, hi temporal.Time, ok bool) {
	return c.tMin, c.tMax, c.has
}

// Snapshot freezes any HLL-backed sketches in the counter (see
// internal/sketch.HLL.Snapshot) so the counter can be kept around after the
// builder producing it moves on, without holding a live, still-mutating
// sketch. Exact-backed counters are returned as independent clones for the
// same reason.
func (c *Counter) Snapshot() *Counter {
	return &Counter{
		events: freeze(c.events),
		nodes:  freeze(c.nodes),
		tMin:   c.tMin,
		tMax:   c.tMax,
		has:    c.has,
	}
}

func freeze(s sketch.Sketch) sketch.Sketch {
	if h, ok := s.(*sketch.HLL); ok {
		return h.Snapshot()
	}
	return s.Clone()
}
