// File: cmd/diff.go
package cmd

import (
	"errors"
	"fmt"
	"os"

	"condense/pkg/diff"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errNoDiffInput is returned when diff has no files and stdin is a terminal.
var errNoDiffInput = errors.New("diff needs two files, or a unified diff piped on stdin")

// diffCmd compares two files, or condenses a unified diff read from stdin.
var diffCmd = &cobra.Command{
	Use:   "diff [file1 file2]",
	Short: "Show only the changed lines between two files",
	Long: `Compare two files line by line and list only what changed, or pipe a
unified diff (git diff, diff -u) on stdin to get a per-file digest.

Lines are compared at the same position; an inserted line shifts every line
after it, so heavily reordered files show up as many changes.`,
	Example: `  condense diff old.txt new.txt
  git diff | condense diff`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			opts := diff.Options{Left: args[0], Right: args[1]}
			return diff.RunFiles(cmd.Context(), opts, cmd.OutOrStdout(), logger())
		}

		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errNoDiffInput
		}
		return diff.RunStdin(cmd.Context(), in, cmd.OutOrStdout(), logger())
	},
}

func init() {
	RootCmd.AddCommand(diffCmd)
}
