// File: pkg/diff/unified.go
package diff

import (
	"bufio"
	"io"
	"strings"

	"condense/pkg/textutil"
)

// Condense summarizes unified diff text per file. Only "+++ " headers start
// a new file; "diff --git" and "--- " headers are skipped. Files without any
// added or removed line are left out. Malformed input is never an error: it
// just yields fewer summaries.
func Condense(r io.Reader) ([]FileSummary, error) {
	var (
		summaries []FileSummary
		current   FileSummary
	)

	flush := func() {
		if current.File != "" && (current.Added > 0 || current.Removed > 0) {
			summaries = append(summaries, current)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(line, "+++ "):
			flush()
			name := strings.TrimPrefix(line, "+++ ")
			current = FileSummary{File: strings.TrimPrefix(name, "b/")}
		case strings.HasPrefix(line, "diff --git"), strings.HasPrefix(line, "--- "):
			continue
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			current.Added++
			current.addSample(line)
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			current.Removed++
			current.addSample(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return summaries, nil
}

func (s *FileSummary) addSample(line string) {
	if len(s.Samples) < MaxSamples {
		s.Samples = append(s.Samples, textutil.Truncate(line, MaxSampleWidth))
	}
}
