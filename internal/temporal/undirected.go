package temporal

import "fmt"

// Undirected is an instantaneous interaction between V1 and V2 with no
// direction: either endpoint can pass state to the other at T.
type Undirected struct {
	V1, V2 Vertex
	T      Time
}

// NewUndirected builds an undirected event, normalising endpoint order so
// two events over the same pair and time compare equal regardless of the
// order vertices were read from file.
func NewUndirected(v1, v2 Vertex, t Time) Undirected {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return Undirected{V1: v1, V2: v2, T: t}
}

func (e Undirected) Time() Time       { return e.T }
func (e Undirected) EffectTime() Time { return e.T }

func (e Undirected) MutatorVerts() []Vertex { return []Vertex{e.V1, e.V2} }
func (e Undirected) MutatedVerts() []Vertex { return []Vertex{e.V1, e.V2} }

func (e Undirected) Endpoints() (Vertex, Vertex) { return e.V1, e.V2 }

func (e Undirected) Equal(other Event) bool {
	o, ok := other.(Undirected)
	return ok && e == o
}

func (e Undirected) Less(other Event) bool {
	o, ok := other.(Undirected)
	if !ok {
		return lessByTime(e, other)
	}
	if e.T != o.T {
		return e.T < o.T
	}
	if e.V1 != o.V1 {
		return e.V1 < o.V1
	}
	return e.V2 < o.V2
}

func (e Undirected) Hash(seed uint64) uint64 {
	h := hashVertex(e.V1, seed)
	h = combineHash(h, hashVertex(e.V2, seed))
	h = combineHash(h, hashTime(e.T, seed))
	return h
}

func (e Undirected) String() string {
	return fmt.Sprintf("%d<->%d@%v", e.V1, e.V2, e.T)
}
