// Package cliopts validates and normalises the flags shared by every
// command in cmd/cli: a seed, a delta-t, an adjacency distribution choice,
// a significance level, and an input network path.
package cliopts

import (
	"fmt"
	"math/rand/v2"

	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/ioformat"
	"github.com/temponet/internal/search"
	apperrors "github.com/temponet/pkg/errors"
)

// ProbDist selects which eventgraph.ProbFunc a run uses.
type ProbDist string

const (
	ProbDistDeterministic ProbDist = "deterministic"
	ProbDistExponential   ProbDist = "exponential"
)

// Func resolves the ProbFunc it names.
func (d ProbDist) Func() (eventgraph.ProbFunc, bool, error) {
	switch d {
	case ProbDistDeterministic, "":
		return eventgraph.DeterministicProb, true, nil
	case ProbDistExponential:
		return eventgraph.ExponentialProb, false, nil
	default:
		return nil, false, apperrors.Wrap(apperrors.CodeUsageError,
			fmt.Sprintf("unknown prob-dist %q, want deterministic or exponential", d), nil)
	}
}

// Measure selects which dimension a search.Measure reports on.
type Measure string

const (
	MeasureEvents Measure = "events"
	MeasureNodes  Measure = "nodes"
)

func (m Measure) searchMeasure() (search.Measure, error) {
	switch m {
	case MeasureEvents, "":
		return search.MeasureEvents, nil
	case MeasureNodes:
		return search.MeasureNodes, nil
	default:
		return 0, apperrors.Wrap(apperrors.CodeUsageError,
			fmt.Sprintf("unknown size-measure %q, want events or nodes", m), nil)
	}
}

// NetworkKind selects the event-list format a command reads.
type NetworkKind string

const (
	NetworkUndirected    NetworkKind = "undirected"
	NetworkDirected      NetworkKind = "directed"
	NetworkDirectedDelay NetworkKind = "directed-delayed"
)

func (k NetworkKind) ioformatKind() (ioformat.Kind, error) {
	switch k {
	case NetworkDirected, "":
		return ioformat.KindDirected, nil
	case NetworkUndirected:
		return ioformat.KindUndirected, nil
	case NetworkDirectedDelay:
		return ioformat.KindDirectedDelayed, nil
	default:
		return 0, apperrors.Wrap(apperrors.CodeUsageError,
			fmt.Sprintf("unknown network kind %q", k), nil)
	}
}

// Options is the validated, resolved form of every flag shared across
// cmd/cli's subcommands.
type Options struct {
	Seed         uint64
	HLLSeed      uint64
	Dt           float64
	ProbDist     ProbDist
	Measure      Measure
	NetworkKind  NetworkKind
	Significance float64
	Precision    uint
	NetworkPath  string

	Prob          eventgraph.ProbFunc
	Deterministic bool
}

// Raw is the unvalidated flag values a cobra command collects before
// calling Resolve.
type Raw struct {
	Seed         uint64
	Dt           float64
	ProbDist     string
	Measure      string
	NetworkKind  string
	Significance float64
	Precision    uint
	NetworkPath  string
}

// Resolve validates r and derives everything a pipeline run needs from it:
// the adjacency probability function, a per-run HLL seed split off of the
// user's seed (mirroring how the original tool drew one random uint32 from
// a seeded generator before doing anything else), and the event-list kind.
func Resolve(r Raw) (Options, error) {
	if r.NetworkPath == "" {
		return Options{}, apperrors.Wrap(apperrors.CodeUsageError, "network path is required (--network)", nil)
	}
	if r.Dt <= 0 {
		return Options{}, apperrors.Wrap(apperrors.CodeUsageError,
			fmt.Sprintf("dt must be positive, got %v", r.Dt), nil)
	}
	if r.Significance <= 0 || r.Significance > 1 {
		return Options{}, apperrors.Wrap(apperrors.CodeUsageError,
			fmt.Sprintf("significance must be in (0, 1], got %v", r.Significance), nil)
	}

	pd := ProbDist(r.ProbDist)
	prob, deterministic, err := pd.Func()
	if err != nil {
		return Options{}, err
	}

	measure := Measure(r.Measure)
	if measure == "" {
		measure = MeasureEvents
	}
	if _, err := measure.searchMeasure(); err != nil {
		return Options{}, err
	}

	kind := NetworkKind(r.NetworkKind)
	if _, err := kind.ioformatKind(); err != nil {
		return Options{}, err
	}

	precision := r.Precision
	if precision == 0 {
		precision = 14
	}

	rng := rand.New(rand.NewPCG(r.Seed, r.Seed))
	hllSeed := rng.Uint64()

	return Options{
		Seed:          r.Seed,
		HLLSeed:       hllSeed,
		Dt:            r.Dt,
		ProbDist:      pd,
		Measure:       measure,
		NetworkKind:   kind,
		Significance:  r.Significance,
		Precision:     precision,
		NetworkPath:   r.NetworkPath,
		Prob:          prob,
		Deterministic: deterministic,
	}, nil
}

// SearchMeasure resolves the search.Measure the options name.
func (o Options) SearchMeasure() search.Measure {
	m, _ := o.Measure.searchMeasure()
	return m
}

// IOFormatKind resolves the ioformat.Kind the options name.
func (o Options) IOFormatKind() ioformat.Kind {
	k, _ := o.NetworkKind.ioformatKind()
	return k
}
