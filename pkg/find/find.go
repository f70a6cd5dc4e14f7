// Package find locates files with fd (or find) and prints them grouped by
// directory.
package find

import (
	"context"
	"fmt"
	"io"

	"condense/pkg/ignore"
	"condense/pkg/toolexec"

	"go.uber.org/zap"
)

// Options holds the inputs of a file search.
type Options struct {
	Pattern    string   // File name pattern passed to the search tool
	Path       string   // Directory to search
	MaxResults int      // Number of files accounted for before the listing stops
	Excludes   []string // Gitignore-style patterns removed from the results
}

// Commands returns the primary and fallback invocations for opts.
func Commands(opts Options) (primary, fallback toolexec.Command) {
	primary = toolexec.Command{Name: "fd", Args: []string{opts.Pattern, opts.Path, "--type", "f"}}
	fallback = toolexec.Command{Name: "find", Args: []string{opts.Path, "-name", opts.Pattern, "-type", "f"}}
	return primary, fallback
}

// Run searches for files and writes the grouped summary to w.
func Run(ctx context.Context, opts Options, w io.Writer, logger *zap.Logger) error {
	logger.Info("Finding files", zap.String("pattern", opts.Pattern), zap.String("path", opts.Path))

	primary, fallback := Commands(opts)
	out, err := toolexec.RunWithFallback(ctx, primary, fallback, logger)
	if err != nil {
		return fmt.Errorf("failed to run fd/find: %w", err)
	}

	paths := ignore.New(logger, opts.Excludes...).Filter(out.Lines())
	logger.Debug("Collected paths", zap.String("tool", out.Tool), zap.Int("count", len(paths)))

	if len(paths) == 0 {
		_, err := fmt.Fprintf(w, "No files found matching '%s'\n", opts.Pattern)
		return err
	}

	return Render(w, paths, opts.MaxResults)
}
