package search

import (
	"fmt"

	"github.com/temponet/internal/estimator"
	"github.com/temponet/internal/temporal"
)

// LifetimeResult is the outcome of a longest-lifetime search.
type LifetimeResult struct {
	Root     temporal.Event
	Duration temporal.Time
	Begin    temporal.Time
	End      temporal.Time
}

// LongestLifetime scans estimates (already-computed out-component
// summaries, typically the estimator's root-only sweep output) for the
// one whose [tMin, tMax] window is widest. Unlike LargestOutComponent this
// needs no exact re-computation: the sweep's widen() already tracks exact
// lifetime bounds regardless of whether the underlying sketches are
// probabilistic, so the estimate itself is the answer.
func LongestLifetime(estimates []estimator.EventCounter) (LifetimeResult, error) {
	if len(estimates) == 0 {
		return LifetimeResult{}, fmt.Errorf("search: no candidates")
	}

	var best LifetimeResult
	found := false
	for _, cand := range estimates {
		lo, hi, ok := cand.Counter.Lifetime()
		if !ok {
			continue
		}
		dur := hi - lo
		if !found || dur > best.Duration {
			best = LifetimeResult{Root: cand.Event, Duration: dur, Begin: lo, End: hi}
			found = true
		}
	}
	if !found {
		return LifetimeResult{}, fmt.Errorf("search: no candidate has a lifetime window")
	}
	return best, nil
}
