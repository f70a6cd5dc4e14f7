// Package textutil holds the string helpers shared by the condensing commands.
// Lengths are counted in runes so multi-byte characters are never split.
package textutil

import "strings"

// Ellipsis marks text that was cut.
const Ellipsis = "..."

// Truncate shortens s to at most max runes, replacing the cut tail with "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(Ellipsis) {
		if max <= 0 {
			return ""
		}
		return string(runes[:max])
	}
	return string(runes[:max-len(Ellipsis)]) + Ellipsis
}

// TruncateHead keeps the last max-3 runes of s and prefixes "...".
func TruncateHead(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(Ellipsis) {
		if max <= 0 {
			return ""
		}
		return string(runes[len(runes)-max:])
	}
	return Ellipsis + string(runes[len(runes)-(max-len(Ellipsis)):])
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return len([]rune(s))
}

// SplitLines splits text on '\n', dropping a trailing '\r' from each line.
// A final newline does not produce an empty trailing line, and empty input
// yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
