// Package app wires the individual analysis packages (ioformat, eventgraph,
// estimator, search, wcc) into the three end-to-end runs a CLI invocation
// can ask for: a full network-stats report, a standalone largest-out-
// component search, and a real-vs-estimate accuracy check.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/temponet/internal/archive"
	"github.com/temponet/internal/cliopts"
	"github.com/temponet/internal/estimator"
	"github.com/temponet/internal/eventgraph"
	"github.com/temponet/internal/ioformat"
	"github.com/temponet/internal/objstore"
	"github.com/temponet/internal/search"
	"github.com/temponet/internal/temporal"
	"github.com/temponet/internal/wcc"
	"github.com/temponet/pkg/config"
	"github.com/temponet/pkg/parallel"
	"github.com/temponet/pkg/utils"
)

// tracer instruments the traversal-heavy phases of a run (graph
// construction, the estimator sweep, the largest-out-component search) as
// OTEL spans; it's a no-op unless telemetry.Init has set up a real
// TracerProvider.
var tracer = otel.Tracer("temponet")

// NetworkStatsReport is the result of one full RunNetworkStats invocation:
// the top-line numbers a summary file or an archived RunRecord is built
// from.
type NetworkStatsReport struct {
	RunUUID string

	EventCount int
	NodeCount  int

	LargestEvents search.Result
	LargestNodes  search.Result
	Lifetime      search.LifetimeResult

	WeaklyComponents []wcc.Component

	SummaryPath         string
	OutComponentPath    string
	WeaklyComponentPath string

	Timer *utils.Timer
}

// RunNetworkStats runs the full pipeline: read the event list, build the
// event graph, sweep the estimator over it, search for the largest
// out-component under both measures plus the longest lifetime, compute
// weakly connected components, write the three output files and a
// summary, and (if cfg.Archive.Enabled) record the run. If store is
// non-nil, every written file is also uploaded under the run's UUID.
func RunNetworkStats(ctx context.Context, cfg *config.Config, opts cliopts.Options, store objstore.Storage, arc *archive.Archive, logger utils.Logger) (*NetworkStatsReport, error) {
	timer := utils.NewTimer("network-stats", utils.WithLogger(logger))

	runUUID := uuid.NewString()
	if err := cfg.EnsureOutDir(); err != nil {
		return nil, fmt.Errorf("app: preparing output directory: %w", err)
	}
	runDir := cfg.RunDir(runUUID)

	readPhase := timer.Start("read-events")
	events, err := ioformat.ReadEvents(opts.NetworkPath, opts.IOFormatKind())
	readPhase.Stop()
	if err != nil {
		return nil, fmt.Errorf("app: reading event list: %w", err)
	}

	_, buildSpan := tracer.Start(ctx, "build-graph")
	buildPhase := timer.Start("build-graph")
	g, err := eventgraph.New(events, opts.Dt, opts.Prob, opts.Deterministic, opts.Seed)
	buildPhase.Stop()
	buildSpan.End()
	if err != nil {
		return nil, fmt.Errorf("app: building event graph: %w", err)
	}

	_, sweepSpan := tracer.Start(ctx, "estimator-sweep")
	sweepPhase := timer.Start("estimator-sweep")
	allEstimates := estimator.OutComponentSizes(g, opts.HLLSeed, opts.Precision, false)
	rootEstimates := make([]estimator.EventCounter, 0, len(allEstimates))
	for _, ec := range allEstimates {
		if len(g.Predecessors(ec.Event, true)) == 0 {
			rootEstimates = append(rootEstimates, ec)
		}
	}
	sweepPhase.Stop()
	sweepSpan.End()

	pool := parallel.PoolConfig{MaxWorkers: cfg.Network.MaxWorker}

	searchCtx, searchSpan := tracer.Start(ctx, "largest-out-component")
	searchPhase := timer.Start("largest-out-component")
	locEvents, err := search.LargestOutComponent(searchCtx, g, rootEstimates, search.MeasureEvents, opts.Significance, pool)
	if err != nil {
		searchPhase.Stop()
		searchSpan.End()
		return nil, fmt.Errorf("app: largest-out-component (events): %w", err)
	}
	locNodes, err := search.LargestOutComponent(searchCtx, g, rootEstimates, search.MeasureNodes, opts.Significance, pool)
	searchPhase.Stop()
	searchSpan.End()
	if err != nil {
		return nil, fmt.Errorf("app: largest-out-component (nodes): %w", err)
	}

	lifetimePhase := timer.Start("longest-lifetime")
	lifetime, err := search.LongestLifetime(rootEstimates)
	lifetimePhase.Stop()
	if err != nil {
		return nil, fmt.Errorf("app: longest-lifetime: %w", err)
	}

	wccPhase := timer.Start("weakly-components")
	components := wcc.Compute(g, true)
	wccPhase.Stop()

	writePhase := timer.Start("write-output")
	if err := cfg.EnsureOutDir(); err != nil {
		writePhase.Stop()
		return nil, fmt.Errorf("app: preparing output directory: %w", err)
	}

	outComponentPath := runDir + "-out-component-sizes.tsv"
	if err := ioformat.WriteOutComponentSizes(outComponentPath, allEstimates); err != nil {
		writePhase.Stop()
		return nil, err
	}

	weaklyPath := runDir + "-weakly-component-sizes.tsv"
	if err := ioformat.WriteWeaklyComponentSizes(weaklyPath, components); err != nil {
		writePhase.Stop()
		return nil, err
	}

	timeMin, timeMax := timeWindow(g)
	weaklyE, weaklyG, weaklyLt := largestWeakly(components)

	summaryPath := runDir + "-summary.txt"
	summary := []string{
		fmt.Sprintf("run: %s", runUUID),
		fmt.Sprintf("network: %s", opts.NetworkPath),
		fmt.Sprintf("seed: %d", opts.Seed),
		fmt.Sprintf("dt: %v", opts.Dt),
		fmt.Sprintf("temporal-vertices: %d", countNodes(g)),
		fmt.Sprintf("temporal-edges: %d", len(g.Topo())),
		fmt.Sprintf("time-min: %v", timeMin),
		fmt.Sprintf("time-max: %v", timeMax),
		fmt.Sprintf("largest-weakly-e: %d", weaklyE),
		fmt.Sprintf("largest-weakly-g: %d", weaklyG),
		fmt.Sprintf("largest-weakly-lt: %v", weaklyLt),
		fmt.Sprintf("largest-out-e: %.6f", locEvents.Size()),
		fmt.Sprintf("largest-out-g: %.6f", locNodes.Size()),
		fmt.Sprintf("largest-out-lt: %v", lifetime.Duration),
		fmt.Sprintf("loc-lt-begin: %v", lifetime.Begin),
		fmt.Sprintf("loc-lt-end: %v", lifetime.End),
	}
	if err := ioformat.WriteSummary(summaryPath, summary); err != nil {
		writePhase.Stop()
		return nil, err
	}
	writePhase.Stop()

	if store != nil {
		uploadPhase := timer.Start("upload-output")
		for _, p := range []string{outComponentPath, weaklyPath, summaryPath} {
			if err := store.UploadFile(ctx, runUUID+"/"+baseName(p), p); err != nil {
				uploadPhase.Stop()
				return nil, fmt.Errorf("app: uploading %s: %w", p, err)
			}
		}
		uploadPhase.Stop()
	}

	report := &NetworkStatsReport{
		RunUUID:             runUUID,
		EventCount:          len(g.Topo()),
		NodeCount:           countNodes(g),
		LargestEvents:       locEvents,
		LargestNodes:        locNodes,
		Lifetime:            lifetime,
		WeaklyComponents:    components,
		SummaryPath:         summaryPath,
		OutComponentPath:    outComponentPath,
		WeaklyComponentPath: weaklyPath,
		Timer:               timer,
	}

	if arc != nil {
		rec := &archive.RunRecord{
			RunUUID:                 runUUID,
			NetworkPath:             opts.NetworkPath,
			Dt:                      opts.Dt,
			Seed:                    opts.Seed,
			Significance:            opts.Significance,
			EventCount:              int64(report.EventCount),
			NodeCount:               int64(report.NodeCount),
			LargestComponentRoot:    fmt.Sprint(locEvents.Root),
			LargestComponentEvents:  locEvents.Size(),
			LargestComponentNodes:   locNodes.Size(),
			WeaklyComponentCount:    int64(len(components)),
			LongestLifetimeRoot:     fmt.Sprint(lifetime.Root),
			LongestLifetimeDuration: float64(lifetime.Duration),
			DurationMillis:          timer.TotalDuration().Milliseconds(),
		}
		if err := arc.Record(ctx, rec); err != nil {
			return report, fmt.Errorf("app: archiving run: %w", err)
		}
	}

	return report, nil
}

// countNodes counts the distinct vertices touched by g's events, for the
// summary's node-count line; the estimator and search only ever see
// per-candidate node estimates, never the graph-wide exact count.
func countNodes(g *eventgraph.Graph) int {
	seen := make(map[uint32]struct{})
	for _, e := range g.Topo() {
		for _, v := range e.MutatorVerts() {
			seen[v] = struct{}{}
		}
		for _, v := range e.MutatedVerts() {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

func baseName(p string) string {
	return filepath.Base(p)
}

// timeWindow returns the [min, max] timestamp g's events span, widened over
// both Time and EffectTime the same way Counter.widen does, since a
// directed-delayed event's effect can land after every event's own Time.
func timeWindow(g *eventgraph.Graph) (temporal.Time, temporal.Time) {
	topo := g.Topo()
	if len(topo) == 0 {
		return 0, 0
	}
	lo, hi := topo[0].Time(), topo[0].Time()
	for _, e := range topo {
		for _, t := range [2]temporal.Time{e.Time(), e.EffectTime()} {
			if t < lo {
				lo = t
			}
			if t > hi {
				hi = t
			}
		}
	}
	return lo, hi
}

// largestWeakly reports, across every weakly connected component, the
// largest event count, the largest node count, and the longest lifetime —
// independently maximised, so the three needn't come from the same
// component.
func largestWeakly(components []wcc.Component) (events, nodes int, lifetime temporal.Time) {
	for _, c := range components {
		if len(c.Events) > events {
			events = len(c.Events)
		}
		if c.NodeCount > nodes {
			nodes = c.NodeCount
		}
		if dur := c.TMax - c.TMin; dur > lifetime {
			lifetime = dur
		}
	}
	return events, nodes, lifetime
}
