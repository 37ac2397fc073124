// Package diff computes a character-level edit script between two
// strings using a longest-common-subsequence table.
package diff

// SegmentKind classifies a run of characters in the edit script.
type SegmentKind int

const (
	// Unchanged text appears in both inputs.
	Unchanged SegmentKind = iota
	// Added text appears only in the second input.
	Added
	// Removed text appears only in the first input.
	Removed
)

// Segment is a maximal run of same-kind characters, in left-to-right
// order. Concatenating Unchanged+Removed segments reconstructs the first
// input; Unchanged+Added reconstructs the second.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Result is the diff outcome. Match is a first-class state: equal inputs
// report Match=true with no segments, distinct from a diff that merely
// has zero Added/Removed runs.
type Result struct {
	Match    bool
	Segments []Segment
}

// Compare diffs a against b at rune granularity.
func Compare(a, b string) Result {
	if a == b {
		return Result{Match: true}
	}
	ar := []rune(a)
	br := []rune(b)
	return Result{Segments: backtrack(lcsTable(ar, br), ar, br)}
}

// lcsTable fills the classic (m+1)x(n+1) LCS length table.
func lcsTable(a, b []rune) [][]int {
	m, n := len(a), len(b)
	c := make([][]int, m+1)
	for i := range c {
		c[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				c[i][j] = c[i-1][j-1] + 1
			} else if c[i][j-1] >= c[i-1][j] {
				c[i][j] = c[i][j-1]
			} else {
				c[i][j] = c[i-1][j]
			}
		}
	}
	return c
}

// backtrack walks the table from the bottom-right corner, emitting runes
// in reverse, then flips and coalesces them into segments. Ties prefer
// additions, which places removed runs before added runs in the output.
func backtrack(c [][]int, a, b []rune) []Segment {
	type step struct {
		kind SegmentKind
		r    rune
	}
	var rev []step
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			rev = append(rev, step{Unchanged, a[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || c[i][j-1] >= c[i-1][j]):
			rev = append(rev, step{Added, b[j-1]})
			j--
		default:
			rev = append(rev, step{Removed, a[i-1]})
			i--
		}
	}

	var segs []Segment
	for k := len(rev) - 1; k >= 0; k-- {
		s := rev[k]
		if len(segs) > 0 && segs[len(segs)-1].Kind == s.kind {
			segs[len(segs)-1].Text += string(s.r)
			continue
		}
		segs = append(segs, Segment{Kind: s.kind, Text: string(s.r)})
	}
	return segs
}
