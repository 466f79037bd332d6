package olrpaths

import (
	"slices"
)

// intersectionLen returns number of edges which are present in both sequences
func intersectionLen(a, b EdgeVector) int {
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.SortFunc(sa, CompareEdges)
	slices.SortFunc(sb, CompareEdges)
	count := 0
	for i, j := 0, 0; i < len(sa) && j < len(sb); {
		switch c := CompareEdges(sa[i], sb[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}

// suffixEqualsPrefix checks if last n edges of a are the first n edges of b
func suffixEqualsPrefix(a, b EdgeVector, n int) bool {
	if n > len(a) || n > len(b) {
		return false
	}
	return slices.Equal(a[len(a)-n:], b[:n])
}

// PathOverlappingLen returns length of the longest suffix of a that matches some prefix of b.
//
// Neither a nor b may contain repeated edges.
// Second value is false when common edges of a and b do not form a suffix of a and a prefix of b:
// such sequences can not be joined directly. Zero with true means "no overlap".
func PathOverlappingLen(a, b EdgeVector) (int, bool) {
	n := intersectionLen(a, b)
	if suffixEqualsPrefix(a, b, n) {
		return n, true
	}
	return 0, false
}
