package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlist/sieve"
)

// newFactorCmd builds "lvlist factor N".
func newFactorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factor N",
		Short: "List primes up to N and factorize every number 2..N",
		Args:  cobra.ExactArgs(1),
		RunE:  runFactor,
	}
}

func runFactor(cmd *cobra.Command, args []string) error {
	limit, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("N must be an integer: %w", err)
	}
	tbl, err := sieve.New(limit)
	if err != nil {
		return err
	}
	logger.Debug("sieve built", zap.Int("limit", limit), zap.Int("primes", len(tbl.Primes())))

	return tbl.Report(cmd.OutOrStdout())
}
