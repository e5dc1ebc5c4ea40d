package numlist

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Set is a set of distinct integers, as returned by List.ToSet.
type Set[N constraints.Integer] map[N]struct{}

// SetOf returns a Set holding values, with duplicates removed.
func SetOf[N constraints.Integer](values ...N) Set[N] {
	s := make(Set[N], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[N]) Contains(v N) bool {
	_, ok := s[v]
	return ok
}

func (s Set[_]) Len() int {
	return len(s)
}

// Equal reports whether s and other hold exactly the same values.
func (s Set[N]) Equal(other Set[N]) bool {
	if len(s) != len(other) {
		return false
	}

	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// Sorted returns the values in ascending order.
func (s Set[N]) Sorted() []N {
	out := make([]N, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// String renders the set as [v1, v2, ...] in ascending order.
func (s Set[N]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i, v := range s.Sorted() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
