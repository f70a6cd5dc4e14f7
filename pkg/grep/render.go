// File: pkg/grep/render.go
package grep

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"condense/pkg/textutil"
)

const (
	maxPerFile     = 10 // matches printed per file
	maxPathWidth   = 50 // longer paths are compacted
	maxPathSegment = 3  // paths with this many segments or fewer are never compacted
)

// Render writes the file-grouped match summary. Printing stops as soon as
// maxResults matches have been shown.
func Render(w io.Writer, res *Results, maxResults int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "🔍 %d matches in %d files:\n", res.Total, len(res.Files))
	fmt.Fprintln(bw)

	shown := 0
	for _, file := range res.SortedFiles() {
		if shown >= maxResults {
			break
		}

		matches := res.Files[file]
		fmt.Fprintf(bw, "📄 %s (%d):\n", CompactPath(file), len(matches))

		for i, m := range matches {
			if i == maxPerFile {
				break
			}
			fmt.Fprintf(bw, "  %4d: %s\n", m.Line, m.Text)
			shown++
			if shown >= maxResults {
				break
			}
		}

		if len(matches) > maxPerFile {
			fmt.Fprintf(bw, "  ... +%d more in this file\n", len(matches)-maxPerFile)
		}
		fmt.Fprintln(bw)
	}

	if res.Total > shown {
		fmt.Fprintf(bw, "... +%d more matches (use -m to show more)\n", res.Total-shown)
	}

	return bw.Flush()
}

// CompactPath shortens long, deep paths to "first/.../parent/name".
func CompactPath(path string) string {
	if textutil.RuneLen(path) <= maxPathWidth {
		return path
	}

	parts := strings.Split(path, "/")
	if len(parts) <= maxPathSegment {
		return path
	}

	return fmt.Sprintf("%s/.../%s/%s", parts[0], parts[len(parts)-2], parts[len(parts)-1])
}
