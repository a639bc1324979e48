package app

import (
	"context"
	"fmt"

	"github.com/temponet/internal/cliopts"
	"github.com/temponet/internal/estimator"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/ioformat"
	"github.com/temponet/internal/search"
	"github.com/temponet/pkg/parallel"
)

// LargestOutComponentReport is the result of a standalone
// largest-out-component run, without the weakly-connected-components or
// longest-lifetime passes RunNetworkStats also performs.
type LargestOutComponentReport struct {
	EventCount int
	Result     search.Result
}

// RunLargestOutComponent reads a network, builds its event graph, sweeps
// the estimator over root events only, and searches for the largest
// out-component under opts.Measure. If outComponentSizesPath is non-empty,
// every root's out-component estimate is also written there.
func RunLargestOutComponent(ctx context.Context, opts cliopts.Options, maxWorkers int, outComponentSizesPath string) (*LargestOutComponentReport, error) {
	events, err := ioformat.ReadEvents(opts.NetworkPath, opts.IOFormatKind())
	if err != nil {
		return nil, fmt.Errorf("app: reading event list: %w", err)
	}

	g, err := eventgraph.New(events, opts.Dt, opts.Prob, opts.Deterministic, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("app: building event graph: %w", err)
	}

	rootEstimates := estimator.OutComponentSizes(g, opts.HLLSeed, opts.Precision, true)

	if outComponentSizesPath != "" {
		if err := ioformat.WriteOutComponentSizes(outComponentSizesPath, rootEstimates); err != nil {
			return nil, err
		}
	}

	pool := parallel.PoolConfig{MaxWorkers: maxWorkers}
	result, err := search.LargestOutComponent(ctx, g, rootEstimates, opts.SearchMeasure(), opts.Significance, pool)
	if err != nil {
		return nil, fmt.Errorf("app: largest-out-component: %w", err)
	}

	return &LargestOutComponentReport{
		EventCount: len(g.Topo()),
		Result:     result,
	}, nil
}
