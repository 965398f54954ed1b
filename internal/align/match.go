package align

import (
	"cmp"
	"slices"
)

// Match is a common block: a[A:A+Size] equals b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

type span struct {
	alo, ahi int
	blo, bhi int
}

// MatchingBlocks returns the common blocks of a and b ordered by position.
// Adjacent blocks are merged, and the list always ends with the zero-size
// sentinel {len(a), len(b), 0}.
func MatchingBlocks[T comparable](a, b []T) []Match {
	b2j := indexPositions(b)

	stack := []span{{alo: 0, ahi: len(a), blo: 0, bhi: len(b)}}
	var found []Match
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := longestMatch(a, b2j, s)
		if m.Size == 0 {
			continue
		}
		found = append(found, m)
		if s.alo < m.A && s.blo < m.B {
			stack = append(stack, span{alo: s.alo, ahi: m.A, blo: s.blo, bhi: m.B})
		}
		if m.A+m.Size < s.ahi && m.B+m.Size < s.bhi {
			stack = append(stack, span{alo: m.A + m.Size, ahi: s.ahi, blo: m.B + m.Size, bhi: s.bhi})
		}
	}

	slices.SortFunc(found, func(x, y Match) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})

	merged := make([]Match, 0, len(found)+1)
	for _, m := range found {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.A+last.Size == m.A && last.B+last.Size == m.B {
				last.Size += m.Size
				continue
			}
		}
		merged = append(merged, m)
	}
	return append(merged, Match{A: len(a), B: len(b)})
}

// longestMatch finds the longest block common to a[alo:ahi] and b[blo:bhi].
// Among blocks of maximal size it returns the one that starts earliest in a,
// then earliest in b. A zero-size match is returned when the ranges share
// nothing.
func longestMatch[T comparable](a []T, b2j map[T][]int, s span) Match {
	best := Match{A: s.alo, B: s.blo}
	// runs[j] is the length of the common run ending at a[i-1], b[j].
	runs := map[int]int{}
	for i := s.alo; i < s.ahi; i++ {
		next := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < s.blo {
				continue
			}
			if j >= s.bhi {
				break
			}
			k := runs[j-1] + 1
			next[j] = k
			if k > best.Size {
				best = Match{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}
		runs = next
	}
	return best
}

func indexPositions[T comparable](b []T) map[T][]int {
	b2j := make(map[T][]int, len(b))
	for j, elem := range b {
		b2j[elem] = append(b2j[elem], j)
	}
	return b2j
}
