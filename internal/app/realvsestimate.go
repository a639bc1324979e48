package app

import (
	"fmt"

	"github.com/temponet/internal/cliopts"
	"github.com/temponet/internal/estimator"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/ioformat"
	"github.com/temponet/internal/traversal"
)

// RunRealVsEstimate builds the event graph and, for every event, pairs its
// HLL-based out-component estimate (from the estimator sweep) against the
// exact out-component computed by direct traversal using that estimate as
// a size hint. This is the accuracy check the original tool shipped as its
// own binary: a property test of the HLL's error bound you can eyeball (or
// chi-squared test) rather than trust blindly. If path is non-empty the
// rows are also written there.
func RunRealVsEstimate(opts cliopts.Options, path string) ([]ioformat.RealVsEstimateRow, error) {
	events, err := ioformat.ReadEvents(opts.NetworkPath, opts.IOFormatKind())
	if err != nil {
		return nil, fmt.Errorf("app: reading event list: %w", err)
	}

	g, err := eventgraph.New(events, opts.Dt, opts.Prob, opts.Deterministic, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("app: building event graph: %w", err)
	}

	estimates := estimator.OutComponentSizes(g, opts.HLLSeed, opts.Precision, false)

	rows := make([]ioformat.RealVsEstimateRow, len(estimates))
	for i, ec := range estimates {
		estEvents := ec.Counter.Events().Estimate()
		estNodes := ec.Counter.Nodes().Estimate()

		exact := traversal.OutComponent(g, ec.Event, sizeHint(estEvents), sizeHint(estNodes))

		rows[i] = ioformat.RealVsEstimateRow{
			Event:          ec.Event,
			EstimateEvents: estEvents,
			RealEvents:     exact.Events().Estimate(),
			EstimateNodes:  estNodes,
			RealNodes:      exact.Nodes().Estimate(),
		}
	}

	if path != "" {
		if err := ioformat.WriteRealVsEstimate(path, rows); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func sizeHint(estimate float64) int {
	return int(estimate+0.5) + 1
}
