package cmd

import (
	"context"

	"condense/pkg/ignore"
	"condense/pkg/logging"
	"condense/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verbosity is the number of -v flags given.
var verbosity int

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "condense",
	Short: "Condense diff, find and grep output",
	Long: `condense runs diff, find and grep style searches and prints short,
grouped summaries: counts first, long lines trimmed, long lists capped.
It is meant for agents and terminals with a small context budget.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(verbosity, "condense", version.Get().Version)
	},
}

func init() {
	RootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Print progress to stderr (repeat for debug output)")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// logger returns the logger configured for this run.
func logger() *zap.Logger {
	if logging.Logger == nil {
		return zap.NewNop()
	}
	return logging.Logger
}

// excludePatterns merges the CONDENSE_EXCLUDE defaults with --exclude flags.
func excludePatterns(cmd *cobra.Command) ([]string, error) {
	flagged, err := cmd.Flags().GetStringSlice("exclude")
	if err != nil {
		return nil, err
	}
	return append(ignore.FromEnv(), flagged...), nil
}
