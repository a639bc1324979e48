package ioformat

import (
	"fmt"
	"io"
	"os"

	"github.com/temponet/internal/estimator"
	"github.com/temponet/internal/wcc"
	apperrors "github.com/temponet/pkg/errors"
)

// WriteOutComponentSizes writes one "index event e_est n_est t_min t_max"
// row per estimator.EventCounter, in the order given.
func WriteOutComponentSizes(path string, sizes []estimator.EventCounter) error {
	return withCreatedFile(path, func(w io.Writer) error {
		for i, ec := range sizes {
			tMin, tMax, _ := ec.Counter.Lifetime()
			if _, err := fmt.Fprintf(w, "%d\t%s\t%.6f\t%.6f\t%v\t%v\n",
				i, ec.Event, ec.Counter.Events().Estimate(), ec.Counter.Nodes().Estimate(), tMin, tMax); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteWeaklyComponentSizes writes one "index events nodes t_min t_max" row
// per weakly connected component.
func WriteWeaklyComponentSizes(path string, components []wcc.Component) error {
	return withCreatedFile(path, func(w io.Writer) error {
		for i, c := range components {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%v\n",
				i, len(c.Events), c.NodeCount, c.TMin, c.TMax); err != nil {
				return err
			}
		}
		return nil
	})
}

// RealVsEstimateRow pairs one candidate's probabilistic estimate against
// its exact out-component size, for the real-vs-estimate property check.
type RealVsEstimateRow struct {
	Event          fmt.Stringer
	EstimateEvents float64
	RealEvents     float64
	EstimateNodes  float64
	RealNodes      float64
}

// WriteRealVsEstimate writes one "estimate real" pair per row for both
// measures, so the output can be scatter-plotted or chi-squared tested
// against the HLL's claimed error bound.
func WriteRealVsEstimate(path string, rows []RealVsEstimateRow) error {
	return withCreatedFile(path, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, "event\testimate_events\treal_events\testimate_nodes\treal_nodes"); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.6f\t%.6f\n",
				r.Event, r.EstimateEvents, r.RealEvents, r.EstimateNodes, r.RealNodes); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSummary writes a short human-readable summary of one run.
func WriteSummary(path string, lines []string) error {
	return withCreatedFile(path, func(w io.Writer) error {
		for _, l := range lines {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func withCreatedFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUsageError, "creating output file", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return apperrors.Wrap(apperrors.CodeUsageError, "writing output file", err)
	}
	return nil
}
