// Package search implements the statistical largest-out-component search:
// given the estimator's sweep output, find the event whose out-component is
// (with high probability) the largest in the graph without computing every
// candidate's exact out-component.
package search

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/temponet/internal/counter"
	"github.com/temponet/internal/estimator"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/temporal"
	"github.com/temponet/internal/traversal"
	"github.com/temponet/pkg/parallel"
)

// Result is the outcome of a largest-out-component search.
type Result struct {
	Root      temporal.Event
	Component *counter.Counter
	Measure   Measure
	Checked   int // number of candidates given an exact out-component computation
}

// Size reports the winning component's size under the measure the search
// ran with.
func (r Result) Size() float64 {
	return r.Measure.of(r.Component).Estimate()
}

// LargestOutComponent walks estimates in descending order of measure's
// estimate, computing exact out-components (via traversal.OutComponent)
// only for candidates that still have a non-negligible chance of beating
// the current best. sumLog is the running log-probability that the current
// best is still correct: it starts at 1.0 rather than at 0 (the log of
// certainty), which leaves that much extra slack before stopping, and adds
// log(1-p_i) for every candidate considered, stopping once it falls below
// log(1-significance).
//
// Exact checks within a batch of up to pool.MaxWorkers candidates run
// concurrently via pkg/parallel; the best-so-far threshold used to prune a
// batch is fixed at the start of the batch, so batching can only delay
// tightening the threshold, never relax it — p values computed against a
// stale (smaller-or-equal) best are conservative, never optimistic.
func LargestOutComponent(ctx context.Context, g *eventgraph.Graph, estimates []estimator.EventCounter, measure Measure, significance float64, pool parallel.PoolConfig) (Result, error) {
	if len(estimates) == 0 {
		return Result{}, fmt.Errorf("search: no candidates")
	}
	if significance <= 0 || significance > 1 {
		return Result{}, fmt.Errorf("search: significance must be in (0, 1], got %v", significance)
	}

	sorted := make([]estimator.EventCounter, len(estimates))
	copy(sorted, estimates)
	sort.Slice(sorted, func(i, j int) bool {
		return measure.of(sorted[i].Counter).Estimate() > measure.of(sorted[j].Counter).Estimate()
	})

	best := exactOutComponent(g, sorted[0].Event, sorted[0].Counter)
	bestRoot := sorted[0].Event
	bestSize := measure.of(best).Estimate()
	checked := 1

	logCutoff := math.Log(1 - significance)
	sumLog := 1.0

	batchSize := pool.MaxWorkers
	if batchSize <= 0 {
		batchSize = parallel.DefaultPoolConfig().MaxWorkers
	}

	for i := 1; i < len(sorted) && sumLog > logCutoff; {
		end := i + batchSize
		if end > len(sorted) {
			end = len(sorted)
		}
		batch := sorted[i:end]
		threshold := bestSize

		survivors := make([]estimator.EventCounter, 0, len(batch))
		for _, cand := range batch {
			p := measure.of(cand.Counter).PLarger(threshold)
			sumLog += math.Log(clampProb(1 - p))
			if p > survivalCutoff {
				survivors = append(survivors, cand)
			}
		}

		if len(survivors) > 0 {
			results := parallel.MapReduce(ctx, survivors, pool,
				func(ctx context.Context, cand estimator.EventCounter) *counter.Counter {
					return exactOutComponent(g, cand.Event, cand.Counter)
				},
				func(mapped []*counter.Counter) []*counter.Counter { return mapped },
			)
			checked += len(survivors)

			for j, c := range results {
				size := measure.of(c).Estimate()
				if size > bestSize {
					bestSize = size
					best = c
					bestRoot = survivors[j].Event
				}
			}
		}

		i = end
	}

	return Result{Root: bestRoot, Component: best, Measure: measure, Checked: checked}, nil
}

func exactOutComponent(g *eventgraph.Graph, root temporal.Event, estimate *counter.Counter) *counter.Counter {
	edgeHint := sizeHint(estimate.Events().Estimate())
	nodeHint := sizeHint(estimate.Nodes().Estimate())
	return traversal.OutComponent(g, root, edgeHint, nodeHint)
}

// survivalCutoff is the smallest PLarger worth paying for an exact
// out-component computation; below it a candidate's chance of overtaking
// the current best is negligible. It still contributes its (tiny) log(1-p)
// term to sumLog, it just isn't given a traversal.
const survivalCutoff = 1e-9

func sizeHint(estimate float64) int {
	return int(estimate*1.05) + 1
}

// clampProb keeps a probability within [0, 1], guarding against the HLL
// normal approximation's PLarger drifting a hair outside its domain near
// the tails.
func clampProb(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
