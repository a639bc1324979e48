package cmd

import (
	"github.com/spf13/cobra"

	"github.com/temponet/internal/cliopts"
)

// networkFlags is the Raw flag set shared by every analysis subcommand,
// mirroring the original tool's -s/-n/--dt/--significance options.
type networkFlags struct {
	raw cliopts.Raw
}

func (f *networkFlags) register(fs *cobra.Command) {
	fs.Flags().StringVarP(&f.raw.NetworkPath, "network", "n", "", "network in event-list format (required)")
	fs.Flags().Uint64VarP(&f.raw.Seed, "seed", "s", 0, "random number generator seed (required)")
	fs.Flags().Float64Var(&f.raw.Dt, "dt", 0, "delta-t parameter; falls back to the config file's network.dt if unset")
	fs.Flags().Float64Var(&f.raw.Significance, "significance", 0, "probability of not finding the correct maximum out-component; falls back to config")
	fs.Flags().StringVar(&f.raw.ProbDist, "prob-dist", "deterministic", "adjacency probability function: deterministic or exponential")
	fs.Flags().StringVar(&f.raw.NetworkKind, "network-kind", "directed", "event-list row shape: undirected, directed, or directed-delayed")
	fs.Flags().UintVar(&f.raw.Precision, "precision", 0, "HLL register-index width; falls back to config's network.precision (0 means use the default)")
	fs.MarkFlagRequired("network")
	fs.MarkFlagRequired("seed")
}

// resolve fills in any zero-valued flag from cfg's defaults and validates
// the result.
func (f *networkFlags) resolve() (cliopts.Options, error) {
	raw := f.raw
	if cfg := GetConfig(); cfg != nil {
		if raw.Dt == 0 {
			raw.Dt = cfg.Network.Dt
		}
		if raw.Significance == 0 {
			raw.Significance = cfg.Network.Significance
		}
		if raw.Precision == 0 {
			raw.Precision = cfg.Network.Precision
		}
	}
	return cliopts.Resolve(raw)
}
