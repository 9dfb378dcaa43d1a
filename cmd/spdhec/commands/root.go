package commands

import (
	"github.com/spf13/cobra"

	"spdhec/internal/app"
	"spdhec/internal/log"
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd(app.Config{}).Execute()
}

// newRootCmd builds the command tree. base supplies the fields that have no
// flag (HTTP client, randomness).
func newRootCmd(base app.Config) *cobra.Command {
	cfg := base
	var wire *app.Wire

	root := &cobra.Command{
		Use:          "spdhec",
		Short:        "Elliptic-curve Diffie-Hellman over small prime fields",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cfg.LogLevel, "stderr", nil); err != nil {
				return err
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfg.Tables, "tables", "", "directory with curves.txt and safe_primes.txt (default: embedded tables)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", log.LogLevelWarn, "debug, info, warn or error")
	root.PersistentFlags().StringVar(&cfg.RelayURL, "relay", "http://127.0.0.1:8080", "relay base URL")
	root.PersistentFlags().IntVar(&cfg.Workers, "workers", 0, "key-search goroutines (default: GOMAXPROCS)")
	root.PersistentFlags().BoolVar(&cfg.Verify, "verify-order", false, "recount each table curve's order before first use (O(p))")

	deps := func() *app.Wire { return wire }
	root.AddCommand(
		exchangeCmd(deps),
		curvesCmd(deps),
		pointsCmd(deps),
		generateCmd(deps),
		partyCmd(deps),
	)
	return root
}
