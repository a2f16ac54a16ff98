package commands

import (
	"log/slog"

	"github.com/katalvlaran/algokit/internal/logger"
	"github.com/spf13/cobra"
)

// LogFlags holds the persistent logging flags shared by every subcommand.
type LogFlags struct {
	Level     string
	Format    string
	AddSource bool
}

// addLogFlags adds logging flags, defaulting from the environment.
func addLogFlags(cmd *cobra.Command, flags *LogFlags) {
	def := logger.DefaultConfig()
	cmd.PersistentFlags().StringVar(&flags.Level, "log-level", def.Level, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.Format, "log-format", def.Format, "Log format (text or json)")
	cmd.PersistentFlags().BoolVar(&flags.AddSource, "log-source", def.AddSource, "Add source location to log entries")
}

// newLogger builds the logger for a subcommand; logs go to the command's stderr.
func newLogger(cmd *cobra.Command, flags *LogFlags) *slog.Logger {
	cfg := logger.Config{Level: flags.Level, Format: flags.Format, AddSource: flags.AddSource}
	return logger.WithCommand(logger.NewLogger(cfg, cmd.ErrOrStderr()), cmd.Name())
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	var logFlags LogFlags

	rootCmd := &cobra.Command{
		Use:   "algokit",
		Short: "Algokit runs classic algorithm exercises from the command line",
		Long: `A command-line front-end for the algokit library:
two-sum index lookup and palindrome validation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addLogFlags(rootCmd, &logFlags)

	rootCmd.AddCommand(newTwoSumCmd(&logFlags))
	rootCmd.AddCommand(newPalindromeCmd(&logFlags))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
