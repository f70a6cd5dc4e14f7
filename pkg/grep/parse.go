// File: pkg/grep/parse.go
package grep

import (
	"sort"
	"strconv"
	"strings"
)

// Match is one matching line of a file.
type Match struct {
	Line int    // 1-based line number, 0 when the tool output had none
	Text string // Cleaned line content
}

// ParseLine splits a "file:line:content" result. A "line:content" result
// comes from searching a single file and is attributed to searchPath.
// Lines of any other shape are rejected.
func ParseLine(line, searchPath string) (file string, lineNo int, content string, ok bool) {
	parts := strings.SplitN(line, ":", 3)
	switch len(parts) {
	case 3:
		return parts[0], atoiOrZero(parts[1]), parts[2], true
	case 2:
		return searchPath, atoiOrZero(parts[0]), parts[1], true
	default:
		return "", 0, "", false
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Results groups matches by file in the order they were found.
type Results struct {
	Files   map[string][]Match
	Total   int
	ordered []string
}

// NewResults returns an empty result set.
func NewResults() *Results {
	return &Results{Files: make(map[string][]Match)}
}

// Add records a match for file.
func (r *Results) Add(file string, m Match) {
	if _, ok := r.Files[file]; !ok {
		r.ordered = append(r.ordered, file)
	}
	r.Files[file] = append(r.Files[file], m)
	r.Total++
}

// SortedFiles returns the file names in lexicographic order.
func (r *Results) SortedFiles() []string {
	files := append([]string(nil), r.ordered...)
	sort.Strings(files)
	return files
}
