package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algokit/palindrome"
	"github.com/spf13/cobra"
)

func newPalindromeCmd(logFlags *LogFlags) *cobra.Command {
	var (
		showNormalized bool
		exitCode       bool
	)

	cmd := &cobra.Command{
		Use:   "palindrome <text...>",
		Short: "Report whether text reads the same forwards and backwards",
		Long: `Join the arguments with single spaces and report whether the result is a
palindrome once lower-cased and reduced to ASCII letters and digits.

Prints "true" or "false".`,
		Example: `  algokit palindrome "A man, a plan, a canal: Panama"
  algokit palindrome --normalized Was it a car or a cat I saw`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, logFlags)

			text := strings.Join(args, " ")
			ok := palindrome.IsPalindrome(text)
			log.Debug("checked", "length", len(text), "palindrome", ok)

			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if showNormalized {
				fmt.Fprintln(cmd.OutOrStdout(), palindrome.Normalize(text))
			}

			if !ok && exitCode {
				return ExitWithCode(ExitCodeNegative, ErrNegativeResult)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showNormalized, "normalized", "n", false, "Also print the normalized text")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 2 when the text is not a palindrome")

	return cmd
}
