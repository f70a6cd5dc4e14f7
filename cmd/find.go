// File: cmd/find.go
package cmd

import (
	"fmt"

	"condense/pkg/find"

	"github.com/spf13/cobra"
)

// findCmd lists files matching a name pattern, grouped by directory.
var findCmd = &cobra.Command{
	Use:   "find <pattern> [path]",
	Short: "Find files and show them grouped by directory",
	Long: `Find files whose name matches pattern under path (default ".") using fd,
or find when fd is not installed, and print them grouped by directory with
an extension summary.`,
	Example: `  condense find '*.go'
  condense find '*.ts' src -m 20 --exclude node_modules/`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := find.Options{Pattern: args[0], Path: "."}
		if len(args) == 2 {
			opts.Path = args[1]
		}

		var err error
		if opts.MaxResults, err = cmd.Flags().GetInt("max"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if opts.MaxResults < 1 {
			return fmt.Errorf("--max must be at least 1, got %d", opts.MaxResults)
		}
		if opts.Excludes, err = excludePatterns(cmd); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		return find.Run(cmd.Context(), opts, cmd.OutOrStdout(), logger())
	},
}

func init() {
	findCmd.Flags().IntP("max", "m", 50, "Maximum number of files to account for")
	findCmd.Flags().StringSlice("exclude", nil, "Gitignore-style pattern of paths to drop (repeatable)")
	RootCmd.AddCommand(findCmd)
}
