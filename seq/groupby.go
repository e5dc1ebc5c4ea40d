package seq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GroupBy splits data into groups of elements sharing the same key.
// Groups appear in the order their keys were first seen, and elements
// within a group keep their relative order.
func GroupBy[K comparable, E any, S ~[]E](data S, f func(E) K) [][]E {
	var out [][]E
	index := make(map[K]int)

	for _, el := range data {
		key := f(el)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], el)
	}

	return out
}

// GroupAndOrderBy is like GroupBy, but the groups are sorted
// by ascending key.
func GroupAndOrderBy[K constraints.Ordered, E any, S ~[]E](data S, f func(E) K) [][]E {
	out := GroupBy(data, f)

	slices.SortFunc(out, func(a, b []E) bool {
		return f(a[0]) < f(b[0])
	})

	return out
}
