package main

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlist/optset"
)

// demoDecl declares help, hi (required), ival (int) and sval (required string).
//
//go:embed options.yaml
var demoDecl []byte

// newOptionsCmd builds "lvlist options". Flag parsing is disabled so every
// argument reaches the option set untouched.
func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options [--name[=value]...]",
		Short: "Parse arguments against the demo option set",
		Long: `Declares the options help, hi (required), ival INT and sval STRING
(required), prints them, parses the arguments and prints the parsed state.
Passing --help lists the options through the auto-help hook.`,
		DisableFlagParsing: true,
		RunE:               runOptions,
	}
}

func runOptions(cmd *cobra.Command, args []string) error {
	set, err := optset.Decode(bytes.NewReader(demoDecl), optset.WithHelpOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Options list before parsing:")
	if err := set.Print(out, false); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if err := set.Parse(args); err != nil {
		logger.Debug("option parsing failed", zap.Strings("args", args), zap.Error(err))
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options list after parsing:")
	return set.Print(out, true)
}
