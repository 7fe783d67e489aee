package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlist/chain"
)

// repackFlags holds the repack command configuration.
type repackFlags struct {
	rounds     int
	showBefore bool
}

// newRepackCmd builds "lvlist repack".
func newRepackCmd() *cobra.Command {
	flags := &repackFlags{}
	cmd := &cobra.Command{
		Use:   "repack [values...]",
		Short: "Interleave integers from both ends of a linked chain",
		Long: `Builds a singly-linked chain from the integer arguments, or from
whitespace-separated integers on stdin when no arguments are given, and
relinks it into x0, x(n-1), x1, x(n-2), … in place.

Reading stdin stops at end of input or at the first token that is not an
integer. The chain is printed before (unless --show-before=false) and after
reordering, one line each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepack(cmd, args, flags)
		},
	}
	cmd.Flags().IntVar(&flags.rounds, "rounds", 1, "Number of times to repack")
	cmd.Flags().BoolVar(&flags.showBefore, "show-before", true, "Print the chain before reordering")
	return cmd
}

func runRepack(cmd *cobra.Command, args []string, flags *repackFlags) error {
	if flags.rounds < 0 {
		return fmt.Errorf("--rounds must be non-negative, got %d", flags.rounds)
	}

	var c *chain.Chain[int]
	if len(args) > 0 {
		values := make([]int, len(args))
		for i, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("argument %d: %q is not an integer", i+1, a)
			}
			values[i] = n
		}
		c = chain.FromSlice(values)
	} else {
		c = chain.FromSeq(scanInts(cmd.InOrStdin()))
	}
	defer c.Release()
	logger.Debug("chain built", zap.Int("len", c.Len()))

	out := cmd.OutOrStdout()
	if flags.showBefore {
		if err := c.Print(out); err != nil {
			return err
		}
	}
	for i := 0; i < flags.rounds; i++ {
		chain.Repack(c)
	}
	logger.Debug("chain repacked", zap.Int("len", c.Len()), zap.Int("rounds", flags.rounds))

	return c.Print(out)
}

// scanInts yields whitespace-separated integers from r until EOF or the
// first token that does not parse.
func scanInts(r io.Reader) iter.Seq[int] {
	return func(yield func(int) bool) {
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			n, err := strconv.Atoi(sc.Text())
			if err != nil {
				logger.Warn("stopped reading input at non-integer token", zap.String("token", sc.Text()))
				return
			}
			if !yield(n) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			logger.Warn("input read failed", zap.Error(err))
		}
	}
}
