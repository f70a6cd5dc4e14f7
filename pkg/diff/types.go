// File: pkg/diff/types.go
package diff

// ChangeKind tags a Change as an addition, a removal or an in-place edit.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

// Prefix returns the marker printed in front of a change.
func (k ChangeKind) Prefix() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}

// Change is one changed line. Old is set for Removed and Modified, New for
// Added and Modified.
type Change struct {
	Kind ChangeKind // What happened to the line
	Line int        // 1-based line number
	Old  string     // Text on the left side
	New  string     // Text on the right side
}

// Result holds the counts and the ordered changes of one comparison.
// Added+Removed+Modified always equals len(Changes).
type Result struct {
	Added    int
	Removed  int
	Modified int
	Changes  []Change
}

// Identical reports whether the comparison found nothing to show.
func (r Result) Identical() bool {
	return len(r.Changes) == 0
}

// FileSummary is the condensed form of one file in a unified diff.
type FileSummary struct {
	File    string   // File name from the "+++" header, "b/" stripped
	Added   int      // Number of added lines
	Removed int      // Number of removed lines
	Samples []string // Up to MaxSamples changed lines, already truncated
}

// Display limits.
const (
	MaxChanges        = 50 // changes printed for a file comparison
	MaxLineWidth      = 80 // width of an added or removed line
	MaxModifiedWidth  = 35 // width of each side of a modified line
	MaxSamples        = 15 // sample lines kept per file from a unified diff
	MaxSamplesShown   = 10 // sample lines printed per file
	MaxSampleWidth    = 70 // width of a sample line
	SimilarityCutover = 0.5
)
