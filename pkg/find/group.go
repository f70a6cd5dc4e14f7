// File: pkg/find/group.go
package find

import (
	"path/filepath"
	"sort"
	"strings"
)

// CurrentDir is the group key for paths without a directory part.
const CurrentDir = "."

// NoExt labels files without an extension in the histogram.
const NoExt = "(no ext)"

// Groups maps a directory to the file names found in it, in input order.
type Groups struct {
	Dirs  []string            // Directory keys, sorted
	Files map[string][]string // File names per directory
}

// Total returns the number of files across all groups.
func (g Groups) Total() int {
	total := 0
	for _, files := range g.Files {
		total += len(files)
	}
	return total
}

// Group splits each path at its last '/' and groups the file names by
// directory.
func Group(paths []string) Groups {
	g := Groups{Files: make(map[string][]string)}
	for _, p := range paths {
		dir, name := CurrentDir, p
		if i := strings.LastIndex(p, "/"); i >= 0 {
			dir, name = p[:i], p[i+1:]
		}
		if _, ok := g.Files[dir]; !ok {
			g.Dirs = append(g.Dirs, dir)
		}
		g.Files[dir] = append(g.Files[dir], name)
	}
	sort.Strings(g.Dirs)
	return g
}

// ExtCount is one row of the extension histogram.
type ExtCount struct {
	Ext   string
	Count int
}

// Label renders the extension the way the summary prints it.
func (e ExtCount) Label() string {
	if e.Ext == NoExt {
		return NoExt
	}
	return "." + e.Ext
}

// Extensions counts file extensions, most frequent first. Ties are ordered
// by extension.
func Extensions(paths []string) []ExtCount {
	counts := make(map[string]int)
	for _, p := range paths {
		ext := strings.TrimPrefix(filepath.Ext(baseName(p)), ".")
		if ext == "" {
			ext = NoExt
		}
		counts[ext]++
	}

	exts := make([]ExtCount, 0, len(counts))
	for ext, n := range counts {
		exts = append(exts, ExtCount{Ext: ext, Count: n})
	}
	sort.Slice(exts, func(i, j int) bool {
		if exts[i].Count != exts[j].Count {
			return exts[i].Count > exts[j].Count
		}
		return exts[i].Ext < exts[j].Ext
	})
	return exts
}

func baseName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
