// File: cmd/grep.go
package cmd

import (
	"fmt"

	"condense/pkg/grep"

	"github.com/spf13/cobra"
)

// minLineLen leaves room for an ellipsis and at least one character.
const minLineLen = 4

// grepCmd searches file contents and prints matches grouped by file.
var grepCmd = &cobra.Command{
	Use:   "grep <pattern> [path]",
	Short: "Search file contents and show matches grouped by file",
	Long: `Search for pattern under path (default ".") using rg, or grep -rn when rg
is not installed. Matches are grouped by file, indentation is stripped and
long lines are cut down around the match.`,
	Example: `  condense grep TODO
  condense grep 'func New' pkg -l 60 -m 20 --context-only`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := grep.Options{Pattern: args[0], Path: "."}
		if len(args) == 2 {
			opts.Path = args[1]
		}

		flags := cmd.Flags()
		var err error
		if opts.MaxLineLen, err = flags.GetInt("max-len"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if opts.MaxResults, err = flags.GetInt("max"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if opts.ContextOnly, err = flags.GetBool("context-only"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if opts.Excludes, err = excludePatterns(cmd); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		if opts.MaxLineLen < minLineLen {
			return fmt.Errorf("--max-len must be at least %d, got %d", minLineLen, opts.MaxLineLen)
		}
		if opts.MaxResults < 1 {
			return fmt.Errorf("--max must be at least 1, got %d", opts.MaxResults)
		}

		return grep.Run(cmd.Context(), opts, cmd.OutOrStdout(), logger())
	},
}

func init() {
	grepCmd.Flags().IntP("max-len", "l", 80, "Maximum width of each printed line")
	grepCmd.Flags().IntP("max", "m", 50, "Maximum number of matches to print")
	grepCmd.Flags().BoolP("context-only", "c", false, "Show a short lead-in before the match instead of the whole line")
	grepCmd.Flags().StringSlice("exclude", nil, "Gitignore-style pattern of paths to drop (repeatable)")
	RootCmd.AddCommand(grepCmd)
}
