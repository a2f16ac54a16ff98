package commands

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/algokit/twosum"
	"github.com/spf13/cobra"
)

func newTwoSumCmd(logFlags *LogFlags) *cobra.Command {
	var (
		target   float64
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:   "twosum --target <number> [--] <n1> [n2...]",
		Short: "Find two positions whose values add up to a target",
		Long: `Find the first pair of positions (i, j), i < j, whose values sum to --target.

Prints "[i j]" or "[]" when no pair exists. Arguments that are not finite
numbers are skipped with a warning; indices still refer to the original
argument positions. Use "--" before negative numbers.`,
		Example: `  algokit twosum --target 9 2 7 11 15
  algokit twosum --target 4 -- -4 8 5 -1`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, logFlags)

			values := make([]any, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					log.Warn("skipping non-numeric argument", "index", i, "arg", arg)
					continue
				}
				values[i] = v
			}

			p, ok, err := twosum.FindAny(values, target)
			if err != nil {
				return fmt.Errorf("twosum: %w", err)
			}
			log.Debug("scan finished", "count", len(values), "target", target, "found", ok)

			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "[]")
				if exitCode {
					return ExitWithCode(ExitCodeNegative, ErrNegativeResult)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), p.Indices())
			return nil
		},
	}

	cmd.Flags().Float64VarP(&target, "target", "t", 0, "Target sum (required)")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 2 when no pair exists")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
