// Package ignore filters search results with gitignore-style exclude patterns.
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// EnvExclude names the environment variable holding default exclude patterns,
// separated by commas.
const EnvExclude = "CONDENSE_EXCLUDE"

// Pattern is one compiled exclude rule.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled form of the rule.
	Negate bool           // Rule started with '!' and re-includes matching paths.
	Line   string         // Rule as written.
}

// Matcher holds an ordered list of exclude rules. The last matching rule wins.
type Matcher struct {
	Patterns []*Pattern
	logger   *zap.Logger
}

// New compiles the given rules. Blank lines and '#' comments are skipped.
func New(logger *zap.Logger, lines ...string) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{logger: logger}
	m.Add(lines...)
	return m
}

// FromEnv returns the rules listed in CONDENSE_EXCLUDE.
func FromEnv() []string {
	raw := os.Getenv(EnvExclude)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var lines []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}

// Add compiles more rules onto the matcher.
func (m *Matcher) Add(lines ...string) {
	for _, line := range lines {
		re, negate := parsePatternLine(line)
		if re == nil {
			continue
		}
		m.Patterns = append(m.Patterns, &Pattern{Regexp: re, Negate: negate, Line: line})
		m.logger.Debug("Compiled exclude pattern", zap.String("pattern", line), zap.Bool("negate", negate))
	}
}

// Empty reports whether the matcher has no rules.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.Patterns) == 0
}

// Excluded reports whether path is excluded by the rules.
func (m *Matcher) Excluded(path string) bool {
	if m.Empty() {
		return false
	}
	normalized := strings.TrimPrefix(filepath.ToSlash(path), "./")

	excluded := false
	for _, p := range m.Patterns {
		if p.Regexp.MatchString(normalized) {
			excluded = !p.Negate
		}
	}
	return excluded
}

// Filter returns the paths that are not excluded, preserving order.
func (m *Matcher) Filter(paths []string) []string {
	if m.Empty() {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if m.Excluded(path) {
			m.logger.Debug("Excluded path", zap.String("path", path))
			continue
		}
		kept = append(kept, path)
	}
	return kept
}

// parsePatternLine turns one gitignore-style rule into a regular expression.
func parsePatternLine(line string) (*regexp.Regexp, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	expr := escapeSpecialChars(trimmed)
	expr = handleDoubleStarPatterns(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, trimmed)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false
	}
	return re, negate
}

var (
	doubleStarMiddle   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailing = regexp.MustCompile(`/\*\*$`)
	doubleStarLeading  = regexp.MustCompile(`^\*\*/`)
)

// escapeSpecialChars escapes regex metacharacters except `*`, `?` and `/`.
func escapeSpecialChars(pattern string) string {
	for _, char := range `\.+()|^$[]{}` {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns rewrites `**` segments. Placeholders keep the
// single-star pass from touching the generated expressions.
func handleDoubleStarPatterns(pattern string) string {
	pattern = doubleStarMiddle.ReplaceAllString(pattern, "/\x00MID\x00/")
	pattern = doubleStarTrailing.ReplaceAllString(pattern, "/\x00TAIL\x00")
	pattern = doubleStarLeading.ReplaceAllString(pattern, "\x00LEAD\x00/")
	return pattern
}

// wildcardToRegex converts `*` and `?` and expands the `**` placeholders.
func wildcardToRegex(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "*", `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", `[^/]`)
	pattern = strings.ReplaceAll(pattern, "/\x00MID\x00/", `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, "/\x00TAIL\x00", `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, "\x00LEAD\x00/", `(.*/)?`)
	return pattern
}

// anchorPattern makes the expression match a whole path, or any path under a
// matching directory. Rules starting with '/' only match from the root.
func anchorPattern(pattern, original string) string {
	pattern = strings.TrimSuffix(pattern, "/") + "(/.*)?$"
	if strings.HasPrefix(original, "/") {
		return "^" + strings.TrimPrefix(pattern, "/")
	}
	return "^(|.*/)" + pattern
}
