// File: pkg/diff/compute.go
package diff

// Compute compares before and after line by line at the same index. It does not
// realign after insertions or deletions, so one inserted line turns every
// later line into a change. Unequal pairs that share more than half of their
// characters are reported as Modified, other pairs as a Removed and an Added
// entry on the same line number.
func Compute(before, after []string) Result {
	var res Result

	maxLen := len(before)
	if len(after) > maxLen {
		maxLen = len(after)
	}

	for i := 0; i < maxLen; i++ {
		line := i + 1
		hasOld, hasNew := i < len(before), i < len(after)

		switch {
		case hasOld && hasNew:
			a, b := before[i], after[i]
			if a == b {
				continue
			}
			if Similarity(a, b) > SimilarityCutover {
				res.Changes = append(res.Changes, Change{Kind: Modified, Line: line, Old: a, New: b})
				res.Modified++
			} else {
				res.Changes = append(res.Changes,
					Change{Kind: Removed, Line: line, Old: a},
					Change{Kind: Added, Line: line, New: b})
				res.Removed++
				res.Added++
			}
		case hasOld:
			res.Changes = append(res.Changes, Change{Kind: Removed, Line: line, Old: before[i]})
			res.Removed++
		case hasNew:
			res.Changes = append(res.Changes, Change{Kind: Added, Line: line, New: after[i]})
			res.Added++
		}
	}

	return res
}

// Similarity is the Jaccard index of the distinct characters of a and b.
// Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	setA := charSet(a)
	setB := charSet(b)

	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

func charSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
