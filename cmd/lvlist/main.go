// Command lvlist runs the lvlist algorithms from the command line:
//
//	lvlist repack [values...]   interleave a chain from both ends
//	lvlist factor N             list primes and factorizations up to N
//	lvlist options [--opt...]   parse arguments against the demo option set
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// verbose enables debug logging.
	verbose bool

	// logger is replaced in PersistentPreRunE; commands may log before that
	// only in tests.
	logger = zap.NewNop()
)

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state out of package globals other than the logger.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvlist",
		Short: "Linked-list repacking, prime sieving and option parsing demos",
		Long: `lvlist bundles three independent algorithm demonstrations:

  repack   relink a singly-linked chain into x0, x(n-1), x1, x(n-2), …
  factor   sieve primes up to N and factorize every number 2..N
  options  parse --name[=value] arguments against a declared option set`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRepackCmd(), newFactorCmd(), newOptionsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
