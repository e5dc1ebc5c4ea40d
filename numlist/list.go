// Package numlist provides an append-only list of integers with
// aggregate statistics and quantified predicates.
//
// Arithmetic is done in the element type. For IntList that is int, which
// is 64 bits wide on every platform this module targets. Sums wrap on
// overflow exactly like Go integer addition; overflow is not detected.
package numlist

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// List is an ordered, append-only sequence of integers.
// Duplicates are kept. List is not safe for concurrent use.
type List[N constraints.Integer] struct {
	values []N
}

// IntList is a List of int.
type IntList = List[int]

// New returns an empty List with room for capacity values.
func New[N constraints.Integer](capacity int) *List[N] {
	return &List[N]{values: make([]N, 0, capacity)}
}

// Of returns a List holding a copy of values.
func Of[N constraints.Integer](values ...N) *List[N] {
	l := New[N](len(values))
	l.values = append(l.values, values...)
	return l
}

// Collect applies mapFn to every element of source, in order,
// and returns the results as a List.
func Collect[S ~[]E, E any, N constraints.Integer](source S, mapFn func(E) N) *List[N] {
	l := New[N](len(source))

	for _, el := range source {
		l.values = append(l.values, mapFn(el))
	}

	return l
}

// CollectInt is Collect for IntList.
func CollectInt[S ~[]E, E any](source S, mapFn func(E) int) *IntList {
	return Collect[S, E, int](source, mapFn)
}

// CollectErr is like Collect, but mapFn may fail. The first error stops
// collection and is returned, wrapped with the index of the element that
// caused it. No list is returned in that case.
func CollectErr[S ~[]E, E any, N constraints.Integer](
	source S, mapFn func(E) (N, error),
) (*List[N], error) {
	l := New[N](len(source))

	for i, el := range source {
		v, err := mapFn(el)
		if err != nil {
			return nil, fmt.Errorf("collect: element %d: %w", i, err)
		}
		l.values = append(l.values, v)
	}

	return l, nil
}

// Append adds values to the end of the list.
func (l *List[N]) Append(values ...N) {
	l.values = append(l.values, values...)
}

func (l *List[_]) Size() int {
	return len(l.values)
}

func (l *List[_]) IsEmpty() bool {
	return len(l.values) == 0
}

// Get returns the value at index i. Like a slice index, Get panics
// if i is out of range.
func (l *List[N]) Get(i int) N {
	return l.values[i]
}

// ToSlice returns a copy of the values.
func (l *List[N]) ToSlice() []N {
	out := make([]N, len(l.values))
	copy(out, l.values)
	return out
}

// ToSet returns the distinct values in the list.
func (l *List[N]) ToSet() Set[N] {
	s := make(Set[N], len(l.values))
	for _, v := range l.values {
		s[v] = struct{}{}
	}
	return s
}

// Select returns a new List holding the values that satisfy pred,
// in list order.
func (l *List[N]) Select(pred func(N) bool) *List[N] {
	out := New[N](0)
	for _, v := range l.values {
		if pred(v) {
			out.values = append(out.values, v)
		}
	}
	return out
}

// Count returns the number of values that satisfy pred.
func (l *List[N]) Count(pred func(N) bool) int {
	n := 0
	for _, v := range l.values {
		if pred(v) {
			n++
		}
	}
	return n
}

// AllSatisfy reports whether every value satisfies pred.
// It stops at the first value that does not, and is true for an empty list.
func (l *List[N]) AllSatisfy(pred func(N) bool) bool {
	for _, v := range l.values {
		if !pred(v) {
			return false
		}
	}
	return true
}

// AnySatisfy reports whether at least one value satisfies pred.
// It stops at the first value that does, and is false for an empty list.
func (l *List[N]) AnySatisfy(pred func(N) bool) bool {
	for _, v := range l.values {
		if pred(v) {
			return true
		}
	}
	return false
}

// NoneSatisfy reports whether no value satisfies pred.
// It stops at the first value that does, and is true for an empty list.
func (l *List[N]) NoneSatisfy(pred func(N) bool) bool {
	return !l.AnySatisfy(pred)
}

// MakeString joins the values with sep.
func (l *List[N]) MakeString(sep string) string {
	var sb strings.Builder
	for i, v := range l.values {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// String renders the list as [v1, v2, ...].
func (l *List[N]) String() string {
	return "[" + l.MakeString(", ") + "]"
}
