package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed.
// Flag values live on package-level commands, so they are reset first.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	out := new(bytes.Buffer)
	RootCmd.SetOut(out)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetIn(stdin)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
	})

	err := Execute(context.Background())
	return out.String(), err
}

func resetFlags() {
	verbosity = 0
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
}

// stubTool puts an executable shell script named name on a fresh PATH.
func stubTool(t *testing.T, name, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs need a POSIX shell")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+"/bin"+string(os.PathListSeparator)+"/usr/bin")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "condense version "), out)

	out, err = execute(t, nil, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestDiffFiles(t *testing.T) {
	left := writeFile(t, "old.txt", "alpha\nbeta\n")
	right := writeFile(t, "new.txt", "alpha\nbeta\ngamma\n")

	out, err := execute(t, nil, "diff", left, right)
	require.NoError(t, err)
	assert.Contains(t, out, "   +1 added, -0 removed, ~0 modified")
	assert.Contains(t, out, "+   3 gamma")
}

func TestDiffIdenticalFiles(t *testing.T) {
	left := writeFile(t, "a.txt", "same\n")
	right := writeFile(t, "b.txt", "same\n")

	out, err := execute(t, nil, "diff", left, right)
	require.NoError(t, err)
	assert.Equal(t, "✅ Files are identical\n", out)
}

func TestDiffMissingFile(t *testing.T) {
	right := writeFile(t, "b.txt", "x\n")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, err := execute(t, nil, "diff", missing, right)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read "+missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiffStdin(t *testing.T) {
	input := strings.Join([]string{
		"diff --git a/main.go b/main.go",
		"--- a/main.go",
		"+++ b/main.go",
		"@@ -1,2 +1,2 @@",
		"-old line",
		"+new line",
		"",
	}, "\n")

	out, err := execute(t, strings.NewReader(input), "diff")
	require.NoError(t, err)
	assert.Equal(t, "📄 main.go (+1 -1)\n  -old line\n  +new line\n", out)
}

func TestDiffRejectsOneArg(t *testing.T) {
	_, err := execute(t, nil, "diff", "only.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 0 or 2 args")
}

func TestGrepValidatesFlags(t *testing.T) {
	_, err := execute(t, nil, "grep", "x", "--max-len", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-len must be at least 4")

	_, err = execute(t, nil, "grep", "x", "-m", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max must be at least 1")
}

func TestFindValidatesMax(t *testing.T) {
	_, err := execute(t, nil, "find", "*.go", "-m", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max must be at least 1")
}

func TestGrepWithStubbedSearchTool(t *testing.T) {
	stubTool(t, "rg", `printf './pkg/a.go:12:\t\tfoo := bar()\n./vendor/b.go:3:foo\n'`)

	out, err := execute(t, nil, "grep", "foo", "--exclude", "vendor/")
	require.NoError(t, err)
	assert.Contains(t, out, "🔍 1 matches in 1 files:")
	assert.Contains(t, out, "📄 ./pkg/a.go (1):")
	assert.Contains(t, out, "    12: foo := bar()")
	assert.NotContains(t, out, "vendor")
}

func TestGrepExcludeFromEnvironment(t *testing.T) {
	stubTool(t, "rg", `echo './gen/x.go:1:foo'`)
	t.Setenv("CONDENSE_EXCLUDE", "gen/")

	out, err := execute(t, nil, "grep", "foo")
	require.NoError(t, err)
	assert.Equal(t, "No matches for 'foo'\n", out)
}

func TestFindWithStubbedSearchTool(t *testing.T) {
	stubTool(t, "fd", `printf './src/a.go\n./src/b.go\n./README.md\n'`)

	out, err := execute(t, nil, "find", "*", "--exclude", "*.md")
	require.NoError(t, err)
	assert.Contains(t, out, "📁 Found 2 files in 1 directories:")
	assert.Contains(t, out, "a.go")
	assert.NotContains(t, out, "README")
}
