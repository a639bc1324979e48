package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temponet/internal/app"
	"github.com/temponet/internal/archive"
	"github.com/temponet/internal/objstore"
)

var networkStatsFlags networkFlags

var networkStatsCmd = &cobra.Command{
	Use:   "network-stats",
	Short: "Report full statistics over a temporal network's event graph",
	Long: `network-stats reads a network in event-list format, builds its event
graph, and writes three output files under the configured output
directory: out-component sizes for every event, weakly connected
component sizes, and a summary combining the largest out-component (by
both event and node count) and the longest-lived root event.`,
	RunE: runNetworkStats,
}

func init() {
	rootCmd.AddCommand(networkStatsCmd)
	networkStatsFlags.register(networkStatsCmd)
}

func runNetworkStats(cmd *cobra.Command, args []string) error {
	opts, err := networkStatsFlags.resolve()
	if err != nil {
		return err
	}

	cfg := GetConfig()
	log := GetLogger()

	arc, err := archive.Open(cfg.Archive)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer arc.Close()

	var store objstore.Storage
	if cfg.Storage.Type != "" {
		store, err = objstore.NewStorage(&cfg.Storage)
		if err != nil {
			log.Warn("object storage unavailable, skipping upload: %v", err)
			store = nil
		}
	}

	report, err := app.RunNetworkStats(context.Background(), cfg, opts, store, arc, log)
	if err != nil {
		return err
	}

	log.Info("run %s complete", report.RunUUID)
	log.Info("events: %d  nodes: %d", report.EventCount, report.NodeCount)
	log.Info("largest out-component (events): root=%s size=%.2f", report.LargestEvents.Root, report.LargestEvents.Size())
	log.Info("largest out-component (nodes):  root=%s size=%.2f", report.LargestNodes.Root, report.LargestNodes.Size())
	log.Info("longest lifetime: root=%s duration=%v", report.Lifetime.Root, report.Lifetime.Duration)
	log.Info("weakly connected components: %d", len(report.WeaklyComponents))
	log.Info("summary written to %s", report.SummaryPath)
	return nil
}
