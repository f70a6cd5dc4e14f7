// Package diff prints condensed diffs: either a positional comparison of two
// text files, or a per-file digest of unified diff text read from a stream.
package diff

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Options holds the inputs of a file comparison.
type Options struct {
	Left  string // Path of the original file
	Right string // Path of the changed file
}

// RunFiles compares two files and writes the condensed report to w.
func RunFiles(ctx context.Context, opts Options, w io.Writer, logger *zap.Logger) error {
	logger.Info("Comparing files", zap.String("left", opts.Left), zap.String("right", opts.Right))

	left, err := ReadLines(opts.Left, logger)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.Left, err)
	}
	right, err := ReadLines(opts.Right, logger)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.Right, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res := Compute(left, right)
	logger.Debug("Computed diff",
		zap.Int("added", res.Added),
		zap.Int("removed", res.Removed),
		zap.Int("modified", res.Modified),
		zap.Int("changes", len(res.Changes)))

	return Render(w, opts.Left, opts.Right, res)
}

// RunStdin condenses unified diff text from r and writes it to w.
func RunStdin(ctx context.Context, r io.Reader, w io.Writer, logger *zap.Logger) error {
	summaries, err := Condense(r)
	if err != nil {
		logger.Debug("Failed to read diff input", zap.Error(err))
		return fmt.Errorf("failed to read diff input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("Condensed unified diff", zap.Int("files", len(summaries)))

	return RenderSummaries(w, summaries)
}
