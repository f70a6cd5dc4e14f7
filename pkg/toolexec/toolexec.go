// Package toolexec runs an external search tool, falling back to a second
// tool when the first one cannot be started.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrNoTool is returned when neither the primary nor the fallback tool could be started.
var ErrNoTool = errors.New("no usable search tool")

// Command is a program name plus its arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command the way a shell user would type it.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Output is the captured standard output of whichever tool ran.
type Output struct {
	Tool     string // Name of the tool that produced the output
	Stdout   string // Standard output, with invalid UTF-8 replaced
	ExitCode int    // Exit code of the tool (non-zero is not an error here)
}

// Lines splits the output into lines.
func (o Output) Lines() []string {
	trimmed := strings.TrimRight(o.Stdout, "\n")
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// RunWithFallback runs primary and returns its output. Only a failure to start
// primary (missing binary, permission denied) triggers fallback; a tool that
// runs and exits non-zero still counts, since search tools use exit codes to
// report "no matches".
func RunWithFallback(ctx context.Context, primary, fallback Command, logger *zap.Logger) (Output, error) {
	out, err := run(ctx, primary)
	if err == nil {
		logger.Debug("Search tool finished", zap.String("tool", primary.Name), zap.Int("exitCode", out.ExitCode))
		return out, nil
	}
	logger.Debug("Primary tool unavailable, falling back",
		zap.String("primary", primary.String()),
		zap.String("fallback", fallback.String()),
		zap.Error(err))

	out, fbErr := run(ctx, fallback)
	if fbErr != nil {
		logger.Error("Fallback tool failed", zap.String("tool", fallback.Name), zap.Error(fbErr))
		return Output{}, fmt.Errorf("%w: %s: %v; %s: %v", ErrNoTool, primary.Name, err, fallback.Name, fbErr)
	}
	logger.Debug("Search tool finished", zap.String("tool", fallback.Name), zap.Int("exitCode", out.ExitCode))
	return out, nil
}

// run executes a single command. A non-nil error means the process could not
// be started or was interrupted by ctx.
func run(ctx context.Context, c Command) (Output, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Output{}, err
	}
	if err != nil && ctx.Err() != nil {
		return Output{}, ctx.Err()
	}

	return Output{
		Tool:     c.Name,
		Stdout:   strings.ToValidUTF8(stdout.String(), "�"),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}
