// Package grep searches file contents with rg (or grep) and prints the
// matches grouped by file, with each line trimmed to a fixed width.
package grep

import (
	"context"
	"fmt"
	"io"
	"strings"

	"condense/pkg/ignore"
	"condense/pkg/toolexec"

	"go.uber.org/zap"
)

// Options holds the inputs of a content search.
type Options struct {
	Pattern     string   // Search pattern passed to the search tool
	Path        string   // File or directory to search
	MaxLineLen  int      // Width each matching line is fitted into
	MaxResults  int      // Number of matching lines printed in total
	ContextOnly bool     // Prefer a short lead-in before the match over the full line
	Excludes    []string // Gitignore-style patterns removed from the results
}

// Commands returns the primary and fallback invocations for opts.
func Commands(opts Options) (primary, fallback toolexec.Command) {
	primary = toolexec.Command{Name: "rg", Args: []string{"-n", "--no-heading", opts.Pattern, opts.Path}}
	fallback = toolexec.Command{Name: "grep", Args: []string{"-rn", opts.Pattern, opts.Path}}
	return primary, fallback
}

// Run searches for opts.Pattern and writes the grouped summary to w.
func Run(ctx context.Context, opts Options, w io.Writer, logger *zap.Logger) error {
	logger.Info("Searching", zap.String("pattern", opts.Pattern), zap.String("path", opts.Path))

	primary, fallback := Commands(opts)
	out, err := toolexec.RunWithFallback(ctx, primary, fallback, logger)
	if err != nil {
		return fmt.Errorf("failed to run grep/rg: %w", err)
	}

	var res *Results
	if strings.TrimSpace(out.Stdout) != "" {
		res = Collect(out.Lines(), opts, ignore.New(logger, opts.Excludes...))
		logger.Debug("Collected matches",
			zap.String("tool", out.Tool),
			zap.Int("matches", res.Total),
			zap.Int("files", len(res.Files)))
	}
	if res == nil || res.Total == 0 {
		_, err := fmt.Fprintf(w, "No matches for '%s'\n", opts.Pattern)
		return err
	}

	return Render(w, res, opts.MaxResults)
}

// Collect parses raw tool output into cleaned matches grouped by file.
// Unparseable lines and excluded files are skipped.
func Collect(lines []string, opts Options, excludes *ignore.Matcher) *Results {
	res := NewResults()
	for _, line := range lines {
		file, lineNo, content, ok := ParseLine(line, opts.Path)
		if !ok || excludes.Excluded(file) {
			continue
		}
		res.Add(file, Match{
			Line: lineNo,
			Text: CleanLine(content, opts.MaxLineLen, opts.ContextOnly, opts.Pattern),
		})
	}
	return res
}
