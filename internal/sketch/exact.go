package sketch

// Exact is a Sketch backed by a real set: its Estimate is the true
// cardinality, used by the full out-component traversals (generic BFS and
// the deterministic SI walk) where the exact membership is needed anyway,
// not just its size.
type Exact struct {
	members map[uint64]struct{}
}

// NewExact builds an empty exact sketch, optionally sized to avoid rehashing
// when the caller has a cardinality estimate in hand (the estimator's
// out-component estimate is normally used as sizeHint).
func NewExact(sizeHint int) *Exact {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Exact{members: make(map[uint64]struct{}, sizeHint)}
}

func (e *Exact) Insert(h uint64) { e.members[h] = struct{}{} }

func (e *Exact) Contains(h uint64) bool {
	_, ok := e.members[h]
	return ok
}

func (e *Exact) Merge(other Sketch) {
	o, ok := other.(*Exact)
	if !ok {
		return
	}
	for h := range o.members {
		e.members[h] = struct{}{}
	}
}

func (e *Exact) Estimate() float64 { return float64(len(e.members)) }

// PLarger degenerates to a step function for an exact sketch: there is no
// estimation error to model, so the true count either exceeds x or it
// doesn't. It exists only so Exact satisfies Sketch; the search that uses
// PLarger for pruning always operates on HLL-backed counters, never on
// exact ones.
func (e *Exact) PLarger(x float64) float64 {
	if float64(len(e.members)) > x {
		return 1
	}
	return 0
}

func (e *Exact) Clone() Sketch {
	c := &Exact{members: make(map[uint64]struct{}, len(e.members))}
	for h := range e.members {
		c.members[h] = struct{}{}
	}
	return c
}
