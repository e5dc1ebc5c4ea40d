// Package bag provides a multiset: a collection that remembers how many
// times each distinct element was added. Bags can be built by counting
// the keys extracted from a slice, queried for occurrences, and asked for
// their k most- or least-frequent elements.
//
// Bags remember the order in which elements were first inserted. That
// order is used for iteration, for String, and to break ties between
// elements with equal counts in TopOccurrences and BottomOccurrences.
//
// Counts are Go ints, 64 bits wide on every platform this module targets.
// Like numlist sums, they wrap on overflow; overflow is not detected.
package bag

import (
	"fmt"
	"strings"
)

// Reader is the read-only view shared by Bag and Immutable.
type Reader[T comparable] interface {
	OccurrencesOf(el T) int
	Size() int
	DistinctCount() int
	ForEach(f func(el T, count int) bool)
}

var (
	_ Reader[int] = (*Bag[int])(nil)
	_ Reader[int] = (*Immutable[int])(nil)
)

// Bag is a mutable multiset. Every element in a Bag has a count of at
// least one; an element whose count drops to zero is removed.
// Bag is not safe for concurrent use. Use ToImmutable to get a
// snapshot that can be shared.
type Bag[T comparable] struct {
	t *tally[T]
}

// New returns an empty Bag.
func New[T comparable]() *Bag[T] {
	return &Bag[T]{t: newTally[T](0)}
}

// Of returns a Bag containing one occurrence of each argument.
// Repeated arguments are counted.
func Of[T comparable](elems ...T) *Bag[T] {
	b := &Bag[T]{t: newTally[T](len(elems))}
	for _, el := range elems {
		b.t.incr(el, 1)
	}
	return b
}

// CountBy applies keyFn to every element of source and counts the keys.
// The returned bag has Size() == len(source).
func CountBy[S ~[]E, E any, T comparable](source S, keyFn func(E) T) *Bag[T] {
	b := &Bag[T]{t: newTally[T](0)}

	for _, el := range source {
		b.t.incr(keyFn(el), 1)
	}

	return b
}

// CountByErr is like CountBy, but keyFn may fail. The first error
// stops counting and is returned, wrapped with the index of the
// element that caused it. No bag is returned in that case.
func CountByErr[S ~[]E, E any, T comparable](
	source S, keyFn func(E) (T, error),
) (*Bag[T], error) {
	b := &Bag[T]{t: newTally[T](0)}

	for i, el := range source {
		key, err := keyFn(el)
		if err != nil {
			return nil, fmt.Errorf("count by: element %d: %w", i, err)
		}
		b.t.incr(key, 1)
	}

	return b, nil
}

// FromMap builds a Bag from an element to count map.
// Elements with a count of zero or less are skipped. Since map iteration
// order is random, so is the insertion order of the returned bag.
func FromMap[T comparable](m map[T]int) *Bag[T] {
	b := &Bag[T]{t: newTally[T](len(m))}

	for el, cnt := range m {
		if cnt > 0 {
			b.t.incr(el, cnt)
		}
	}

	return b
}

// OccurrencesOf returns the count of el, or 0 if el is not in the bag.
func (b *Bag[T]) OccurrencesOf(el T) int {
	return b.t.get(el)
}

// Add adds n occurrences of el. Adding zero occurrences does nothing.
// Add panics if n is negative.
func (b *Bag[T]) Add(el T, n int) {
	if n < 0 {
		panic("negative increment")
	}
	if n == 0 {
		return
	}

	b.t.incr(el, n)
}

// Remove removes up to n occurrences of el. If el ends up with no
// occurrences, it is removed from the bag entirely. Remove reports
// whether the bag was changed.
// Remove panics if n is negative.
func (b *Bag[T]) Remove(el T, n int) bool {
	if n < 0 {
		panic("negative decrement")
	}
	if n == 0 {
		return false
	}

	return b.t.decr(el, n)
}

// AddAll adds every occurrence in other to b.
// Elements that other reports with a count of zero or less are skipped.
func (b *Bag[T]) AddAll(other Reader[T]) {
	other.ForEach(func(el T, count int) bool {
		if count > 0 {
			b.t.incr(el, count)
		}
		return true
	})
}

// RemoveAll removes every occurrence in other from b.
// Counts never go below zero. Elements that other reports with a count
// of zero or less are skipped.
func (b *Bag[T]) RemoveAll(other Reader[T]) {
	if o, ok := other.(*Bag[T]); ok && o == b {
		b.Clear()
		return
	}

	other.ForEach(func(el T, count int) bool {
		if count > 0 {
			b.t.decr(el, count)
		}
		return true
	})
}

// Clear removes all elements.
func (b *Bag[T]) Clear() {
	b.t = newTally[T](0)
}

// Size returns the total number of occurrences in the bag.
func (b *Bag[T]) Size() int {
	return b.t.size
}

// DistinctCount returns the number of distinct elements in the bag.
func (b *Bag[T]) DistinctCount() int {
	return b.t.distinct()
}

func (b *Bag[T]) IsEmpty() bool {
	return b.t.size == 0
}

// ForEach calls f for each distinct element and its count, in the order
// the elements were first inserted. If f returns false, iteration stops.
// The bag must not be modified during iteration.
func (b *Bag[T]) ForEach(f func(el T, count int) bool) {
	b.t.forEach(f)
}

// TopOccurrences returns the k most frequent elements in descending order
// of count. Elements with equal counts are ordered by first insertion.
// If k exceeds the number of distinct elements, all of them are returned.
// TopOccurrences panics if k is negative.
func (b *Bag[T]) TopOccurrences(k int) []Occurrence[T] {
	return selectk(b.t, k, true)
}

// BottomOccurrences returns the k least frequent elements in ascending order
// of count. Ties are broken the same way as in TopOccurrences.
// BottomOccurrences panics if k is negative.
func (b *Bag[T]) BottomOccurrences(k int) []Occurrence[T] {
	return selectk(b.t, k, false)
}

// Equal reports whether b and other hold the same elements with the
// same counts. Insertion order is not compared.
func (b *Bag[T]) Equal(other Reader[T]) bool {
	return equal[T](b, other)
}

// Clone returns an independent copy of b.
func (b *Bag[T]) Clone() *Bag[T] {
	return &Bag[T]{t: b.t.clone()}
}

// ToMap returns the element counts as a new map.
func (b *Bag[T]) ToMap() map[T]int {
	return b.t.toMap()
}

// ToImmutable returns a read-only snapshot of b. Later changes to b
// do not affect the snapshot.
func (b *Bag[T]) ToImmutable() *Immutable[T] {
	return &Immutable[T]{t: b.t.clone()}
}

// String renders the bag as {el:count, ...} in insertion order.
func (b *Bag[T]) String() string {
	return format(b.t)
}

func equal[T comparable](a, b Reader[T]) bool {
	switch o := b.(type) {
	case nil:
		return false
	case *Bag[T]:
		if o == nil {
			return false
		}
	case *Immutable[T]:
		if o == nil {
			return false
		}
	}

	if a.Size() != b.Size() || a.DistinctCount() != b.DistinctCount() {
		return false
	}

	same := true
	a.ForEach(func(el T, count int) bool {
		same = b.OccurrencesOf(el) == count
		return same
	})

	return same
}

func format[T comparable](t *tally[T]) string {
	var sb strings.Builder

	sb.WriteByte('{')
	first := true
	t.forEach(func(el T, count int) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v:%d", el, count)
		return true
	})
	sb.WriteByte('}')

	return sb.String()
}
