// File: pkg/find/tree.go
package find

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"condense/pkg/textutil"
)

const (
	maxDirWidth   = 50 // longer directory names keep only their tail
	maxListed     = 3  // groups up to this size list every file
	maxPreviewed  = 2  // files shown for larger groups
	maxExtensions = 5  // rows in the extension summary

	branch = "  ├─ "
	last   = "  └─ "
)

// Render writes the directory-grouped summary of paths. Groups are printed
// in key order until maxResults files have been accounted for; a collapsed
// group counts all of its files.
func Render(w io.Writer, paths []string, maxResults int) error {
	bw := bufio.NewWriter(w)
	groups := Group(paths)

	fmt.Fprintf(bw, "📁 Found %d files in %d directories:\n", groups.Total(), len(groups.Dirs))
	fmt.Fprintln(bw)

	shown := 0
	for _, dir := range groups.Dirs {
		if shown >= maxResults {
			fmt.Fprintf(bw, "... +%d more results\n", len(paths)-shown)
			break
		}

		files := groups.Files[dir]
		display := textutil.TruncateHead(dir, maxDirWidth)

		if len(files) <= maxListed {
			fmt.Fprintf(bw, "%s/ (%d)\n", display, len(files))
			for _, f := range files {
				fmt.Fprintf(bw, "%s%s\n", last, f)
			}
		} else {
			fmt.Fprintf(bw, "%s/ (%d files)\n", display, len(files))
			for _, f := range files[:maxPreviewed] {
				fmt.Fprintf(bw, "%s%s\n", branch, f)
			}
			fmt.Fprintf(bw, "%s... +%d more\n", last, len(files)-maxPreviewed)
		}
		shown += len(files)
	}

	if exts := Extensions(paths); len(exts) > 1 {
		if len(exts) > maxExtensions {
			exts = exts[:maxExtensions]
		}
		labels := make([]string, len(exts))
		for i, e := range exts {
			labels[i] = fmt.Sprintf("%s (%d)", e.Label(), e.Count)
		}
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "📊 Extensions: %s\n", strings.Join(labels, ", "))
	}

	return bw.Flush()
}
