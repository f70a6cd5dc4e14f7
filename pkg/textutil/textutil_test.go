package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "", Truncate("abcdef", 0))
}

func TestTruncateCountsRunes(t *testing.T) {
	s := strings.Repeat("é", 20)
	got := Truncate(s, 10)
	assert.Equal(t, 10, RuneLen(got))
	assert.True(t, strings.HasSuffix(got, Ellipsis))
}

func TestTruncateHead(t *testing.T) {
	dir := "very/long/path/" + strings.Repeat("x", 60)
	got := TruncateHead(dir, 50)
	assert.Equal(t, 50, RuneLen(got))
	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(dir, strings.TrimPrefix(got, "...")))
	assert.Equal(t, "src", TruncateHead("src", 50))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n\n"))
	assert.Equal(t, []string{""}, SplitLines("\n"))
}
