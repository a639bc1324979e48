// Package temporal defines the event types that make up a temporal network:
// timestamped interactions between vertices, in the three flavours an event
// graph can be built over (undirected, directed, and directed with a
// propagation delay).
package temporal

import "fmt"

// Vertex identifies a node in the temporal network.
type Vertex = uint32

// Time is the network's time axis. A plain float64 covers both integer and
// fractional timestamps from the input file without a generic type param on
// every downstream package.
type Time = float64

// Event is a single timestamped interaction. Implementations are value types
// and must be safe to copy, compare with ==, and use as map keys.
type Event interface {
	// Time is when the event occurs.
	Time() Time
	// EffectTime is when the event's effect on MutatedVerts takes hold.
	// Equal to Time() except for delayed events.
	EffectTime() Time
	// MutatorVerts are the vertices whose state at Time() can trigger this
	// event to propagate.
	MutatorVerts() []Vertex
	// MutatedVerts are the vertices whose state changes at EffectTime() as a
	// result of this event.
	MutatedVerts() []Vertex
	// Endpoints are the two vertices the event spans: in file order for the
	// directed variants, in ascending order for Undirected (which normalises
	// its pair on construction).
	Endpoints() (Vertex, Vertex)
	// Less gives the total order events are sorted into within an event
	// graph's topo slice: by Time first, so the slice is already a valid
	// topological order of the induced DAG.
	Less(other Event) bool
	// Equal reports whether two events describe the same interaction.
	Equal(other Event) bool
	// Hash is a stable, seed-dependent hash of the event's identity, used to
	// drive both sketch membership and hash-stable Bernoulli sampling.
	Hash(seed uint64) uint64
	fmt.Stringer
}

// IsSelfLoop reports whether an event's two endpoints coincide. Event list
// readers drop these on load.
func IsSelfLoop(e Event) bool {
	a, b := e.Endpoints()
	return a == b
}

// lessByTime is the fallback ordering used only when comparing events of
// different concrete variants, which an event graph never mixes in
// practice but which Less must still answer for.
func lessByTime(a, b Event) bool {
	return a.Time() < b.Time()
}
