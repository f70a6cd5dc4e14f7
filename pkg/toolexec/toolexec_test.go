package toolexec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeStub puts an executable shell script named name into dir.
func writeStub(t *testing.T, dir, name, body string) {
	t.Helper()
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755))
}

func stubDir(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs need a POSIX shell")
	}
	dir := t.TempDir()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+"/bin"+string(os.PathListSeparator)+"/usr/bin")
	return dir
}

func TestRunWithFallbackPrefersPrimary(t *testing.T) {
	dir := stubDir(t)
	writeStub(t, dir, "primary-tool", `echo "from primary $1"`)
	writeStub(t, dir, "fallback-tool", `echo "from fallback"`)

	out, err := RunWithFallback(context.Background(),
		Command{Name: "primary-tool", Args: []string{"x"}},
		Command{Name: "fallback-tool"},
		zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "primary-tool", out.Tool)
	assert.Equal(t, []string{"from primary x"}, out.Lines())
}

func TestRunWithFallbackUsesFallbackWhenPrimaryMissing(t *testing.T) {
	dir := stubDir(t)
	writeStub(t, dir, "fallback-tool", `printf 'a\nb\n'`)

	out, err := RunWithFallback(context.Background(),
		Command{Name: "condense-no-such-tool"},
		Command{Name: "fallback-tool"},
		zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "fallback-tool", out.Tool)
	assert.Equal(t, []string{"a", "b"}, out.Lines())
}

func TestRunWithFallbackKeepsNonZeroExit(t *testing.T) {
	dir := stubDir(t)
	writeStub(t, dir, "primary-tool", `echo partial; exit 1`)

	out, err := RunWithFallback(context.Background(),
		Command{Name: "primary-tool"},
		Command{Name: "condense-no-such-tool"},
		zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, out.ExitCode)
	assert.Equal(t, []string{"partial"}, out.Lines())
}

func TestRunWithFallbackBothMissing(t *testing.T) {
	stubDir(t)

	_, err := RunWithFallback(context.Background(),
		Command{Name: "condense-missing-a"},
		Command{Name: "condense-missing-b"},
		zap.NewNop())
	require.ErrorIs(t, err, ErrNoTool)
}

func TestOutputReplacesInvalidUTF8(t *testing.T) {
	dir := stubDir(t)
	writeStub(t, dir, "primary-tool", `printf 'ok\377\n'`)

	out, err := RunWithFallback(context.Background(),
		Command{Name: "primary-tool"},
		Command{Name: "condense-no-such-tool"},
		zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"ok�"}, out.Lines())
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "rg", Args: []string{"-n", "--no-heading", "foo", "."}}
	assert.Equal(t, "rg -n --no-heading foo .", c.String())
}
