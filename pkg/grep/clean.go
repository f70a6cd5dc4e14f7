// File: pkg/grep/clean.go
package grep

import (
	"fmt"
	"regexp"
	"strings"

	"condense/pkg/textutil"
)

// maxLeadContext is how many characters before a match a context-only line keeps.
const maxLeadContext = 20

// CleanLine trims line and fits it into maxLen runes, keeping the first
// case-insensitive occurrence of pattern visible where possible. With
// contextOnly set, a short lead-in before the match through the end of the
// line is preferred when it fits.
func CleanLine(line string, maxLen int, contextOnly bool, pattern string) string {
	trimmed := strings.TrimSpace(line)

	if contextOnly {
		if matched, ok := contextWindow(trimmed, pattern); ok && textutil.RuneLen(matched) <= maxLen {
			return matched
		}
	}

	runes := []rune(trimmed)
	n := len(runes)
	if n <= maxLen {
		return trimmed
	}

	pos := indexFold(runes, []rune(pattern))
	if pos < 0 {
		return textutil.Truncate(trimmed, maxLen)
	}

	start := pos - maxLen/3
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > n {
		end = n
	}
	if end == n {
		start = end - maxLen
		if start < 0 {
			start = 0
		}
	}

	head, tail := start > 0, end < n
	ell := len(textutil.Ellipsis)
	switch {
	case head && tail:
		if maxLen < 2*ell+1 {
			return textutil.Truncate(trimmed, maxLen)
		}
		end -= 2 * ell
	case head:
		start += ell
	case tail:
		end -= ell
	}

	var b strings.Builder
	if head {
		b.WriteString(textutil.Ellipsis)
	}
	b.WriteString(string(runes[start:end]))
	if tail {
		b.WriteString(textutil.Ellipsis)
	}
	return b.String()
}

// contextWindow returns up to maxLeadContext characters before the first
// case-insensitive occurrence of pattern, through the end of the line.
func contextWindow(line, pattern string) (string, bool) {
	re, err := regexp.Compile(fmt.Sprintf("(?i).{0,%d}%s.*", maxLeadContext, regexp.QuoteMeta(pattern)))
	if err != nil {
		return "", false
	}
	loc := re.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return line[loc[0]:loc[1]], true
}

// indexFold returns the rune index of the first case-insensitive occurrence
// of pattern in runes, or -1.
func indexFold(runes, pattern []rune) int {
	if len(pattern) == 0 {
		return 0
	}
	for i := 0; i+len(pattern) <= len(runes); i++ {
		if strings.EqualFold(string(runes[i:i+len(pattern)]), string(pattern)) {
			return i
		}
	}
	return -1
}
