// File: pkg/diff/render.go
package diff

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"condense/pkg/textutil"
)

// Render writes the condensed report for a file comparison.
func Render(w io.Writer, src, dst string, res Result) error {
	bw := bufio.NewWriter(w)

	if res.Identical() {
		fmt.Fprintln(bw, "✅ Files are identical")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "📊 %s → %s\n", src, dst)
	fmt.Fprintf(bw, "   +%d added, -%d removed, ~%d modified\n", res.Added, res.Removed, res.Modified)
	fmt.Fprintln(bw)

	for i, c := range res.Changes {
		if i == MaxChanges {
			break
		}
		switch c.Kind {
		case Added:
			fmt.Fprintf(bw, "%s%4d %s\n", c.Kind.Prefix(), c.Line, textutil.Truncate(c.New, MaxLineWidth))
		case Removed:
			fmt.Fprintf(bw, "%s%4d %s\n", c.Kind.Prefix(), c.Line, textutil.Truncate(c.Old, MaxLineWidth))
		case Modified:
			fmt.Fprintf(bw, "%s%4d %s → %s\n", c.Kind.Prefix(), c.Line,
				textutil.Truncate(c.Old, MaxModifiedWidth),
				textutil.Truncate(c.New, MaxModifiedWidth))
		}
	}

	if len(res.Changes) > MaxChanges {
		fmt.Fprintf(bw, "... +%d more changes\n", len(res.Changes)-MaxChanges)
	}

	return bw.Flush()
}

// RenderSummaries writes the per-file blocks of a condensed unified diff.
func RenderSummaries(w io.Writer, summaries []FileSummary) error {
	var out []string
	for _, s := range summaries {
		out = append(out, fmt.Sprintf("📄 %s (+%d -%d)", s.File, s.Added, s.Removed))
		for i, sample := range s.Samples {
			if i == MaxSamplesShown {
				break
			}
			out = append(out, "  "+sample)
		}
		if len(s.Samples) > MaxSamplesShown {
			out = append(out, fmt.Sprintf("  ... +%d more", len(s.Samples)-MaxSamplesShown))
		}
	}

	_, err := fmt.Fprintln(w, strings.Join(out, "\n"))
	return err
}
