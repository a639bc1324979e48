package traversal

import (
	"container/heap"
	"sort"

	"github.com/temponet/internal/counter"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/sketch"
	"github.com/temponet/internal/temporal"
)

// DeterministicOutComponent computes root's exact out-component in a single
// forward scan of the graph's topo order, exploiting a {0,1}-valued
// probability function: instead of following edges one Successors call at
// a time, it tracks the most recent time each vertex was "infected" and
// advances a min-heap of in-transition delayed events, stopping as soon as
// the scan moves dt past the last time anything was infected. Only valid
// when g.Deterministic() is true; callers should fall back to
// GenericOutComponent otherwise.
func DeterministicOutComponent(g *eventgraph.Graph, root temporal.Event, edgeSizeHint, nodeSizeHint int) *counter.Counter {
	seed := g.Seed()
	dt := g.Dt()
	out := counter.New(sketch.NewExact(edgeSizeHint), sketch.NewExact(nodeSizeHint))
	out.Insert(root, seed)

	inTransition := &effectTimeHeap{root}
	heap.Init(inTransition)

	lastInfected := make(map[temporal.Vertex]temporal.Time, nodeSizeHint)
	for _, v := range root.MutatedVerts() {
		lastInfected[v] = root.EffectTime()
	}
	lastInfectTime := root.EffectTime()

	topo := g.Topo()
	idx := sort.Search(len(topo), func(i int) bool { return root.Less(topo[i]) })

	for idx < len(topo) &&
		(topo[idx].Time() < lastInfectTime || topo[idx].Time()-lastInfectTime < dt) {

		for inTransition.Len() > 0 && (*inTransition)[0].EffectTime() < topo[idx].Time() {
			settled := heap.Pop(inTransition).(temporal.Event)
			for _, v := range settled.MutatedVerts() {
				lastInfected[v] = settled.EffectTime()
			}
			out.Insert(settled, seed)
		}

		cand := topo[idx]
		infecting := false
		for _, v := range cand.MutatorVerts() {
			if lt, ok := lastInfected[v]; ok && cand.Time() > lt && cand.Time()-lt < dt {
				infecting = true
				break
			}
		}

		if infecting {
			if cand.Time() == cand.EffectTime() {
				out.Insert(cand, seed)
				for _, v := range cand.MutatedVerts() {
					lastInfected[v] = cand.Time()
				}
			} else {
				heap.Push(inTransition, cand)
			}
			if cand.EffectTime() > lastInfectTime {
				lastInfectTime = cand.EffectTime()
			}
		}

		idx++
	}

	for inTransition.Len() > 0 {
		settled := heap.Pop(inTransition).(temporal.Event)
		out.Insert(settled, seed)
	}

	return out
}
