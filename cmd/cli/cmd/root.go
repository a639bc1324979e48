package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temponet/pkg/config"
	"github.com/temponet/pkg/telemetry"
	"github.com/temponet/pkg/utils"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logger     utils.Logger

	// Loaded config, set in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "temponet",
	Short: "Analyze the event graph of a temporal network",
	Long: `temponet reads a temporal network in event-list format, builds its
event graph, and reports statistics over it: the largest out-component
under a chosen significance level, the longest-lived root event, and the
network's weakly connected components.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := utils.LevelInfo
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		shutdown, err := telemetry.Init(context.Background())
		if err != nil {
			logger.Warn("telemetry initialization failed: %v", err)
			return nil
		}
		telemetryShutdown = shutdown
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			return telemetryShutdown(context.Background())
		}
		return nil
	},
}

var telemetryShutdown telemetry.ShutdownFunc

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (defaults: ./config.yaml, ./configs/config.yaml, /etc/temponet/config.yaml)")

	binName := BinName()
	rootCmd.Example = `  # Report full network statistics
  ` + binName + ` network-stats -n events.txt --seed 1 --dt 3600

  # Find just the largest out-component
  ` + binName + ` largest-out-component -n events.txt --seed 1 --dt 3600 --significance 0.01

  # Check the HLL estimator's accuracy against exact traversal
  ` + binName + ` real-vs-estimate -n events.txt --seed 1 --dt 3600 --out-component-sizes real-vs-estimate.tsv`
}

// GetLogger returns the configured logger.
func GetLogger() utils.Logger {
	return logger
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
