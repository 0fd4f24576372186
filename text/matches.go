package text

import "github.com/arloliu/ctext/internal/pool"

// appendMatch appends a match position, growing the backing array by half its
// capacity when full.
func appendMatch(idx []int, pos int) []int {
	if len(idx) == cap(idx) {
		grown := make([]int, len(idx), cap(idx)+cap(idx)>>1+1)
		copy(grown, idx)
		idx = grown
	}

	return append(idx, pos)
}

// collectMatches records the start of every non-overlapping occurrence of
// needle in hay into a pooled slice. An empty needle matches before every unit
// and at the end. The caller must call release after the last use.
func collectMatches(hay, needle view) (matches *[]int, release func()) {
	matches, release = pool.GetIndexSlice()

	step := max(needle.n, 1)
	for i := indexOf(hay, needle, 0); i >= 0; i = indexOf(hay, needle, i+step) {
		*matches = appendMatch(*matches, i)
		if i >= hay.n {
			break
		}
	}

	return matches, release
}
