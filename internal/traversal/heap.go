package traversal

import "github.com/temponet/internal/temporal"

// effectTimeHeap is a min-heap of in-transition delayed events, ordered by
// EffectTime: the next event to take effect is always at the top.
type effectTimeHeap []temporal.Event

func (h effectTimeHeap) Len() int { return len(h) }
func (h effectTimeHeap) Less(i, j int) bool {
	return h[i].EffectTime() < h[j].EffectTime()
}
func (h effectTimeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *effectTimeHeap) Push(x any) {
	*h = append(*h, x.(temporal.Event))
}

func (h *effectTimeHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
