package bag

import "container/heap"

// Occurrence represents an element-count pair.
type Occurrence[T any] struct {
	Element T
	Count   int
}

// ranked is an Occurrence with its position in insertion order,
// which breaks ties between equal counts.
type ranked[T any] struct {
	Occurrence[T]
	pos int
}

// byCountDesc is used to implement a max-heap.
type byCountDesc[T any] []ranked[T]

var _ heap.Interface = (*byCountDesc[int])(nil)

func (r byCountDesc[_]) Len() int {
	return len(r)
}

func (r byCountDesc[_]) Less(i, j int) bool {
	// yes, the sign is correct
	// see container/heap PriorityQueue example
	if r[i].Count != r[j].Count {
		return r[i].Count > r[j].Count
	}
	return r[i].pos < r[j].pos
}

func (r byCountDesc[_]) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

func (r *byCountDesc[T]) Push(x any) {
	*r = append(*r, x.(ranked[T]))
}

func (r *byCountDesc[_]) Pop() any {
	x := (*r)[len(*r)-1]
	*r = (*r)[:len(*r)-1]
	return x
}

// byCountAsc is used to implement a min-heap.
type byCountAsc[T any] struct {
	byCountDesc[T]
}

var _ heap.Interface = (*byCountAsc[int])(nil)

func (r byCountAsc[_]) Less(i, j int) bool {
	a, b := r.byCountDesc[i], r.byCountDesc[j]
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.pos < b.pos
}

// selectk builds a min- or max-heap from the tally, then pops off
// up to k occurrences and returns them. The tally is not modified.
func selectk[T comparable](t *tally[T], k int, max bool) []Occurrence[T] {
	if k < 0 {
		panic("k is negative")
	}
	if n := t.distinct(); k > n {
		k = n
	}
	if k == 0 {
		return []Occurrence[T]{}
	}

	rs := make(byCountDesc[T], 0, t.distinct())
	t.forEach(func(el T, count int) bool {
		rs = append(rs, ranked[T]{
			Occurrence: Occurrence[T]{Element: el, Count: count},
			pos:        len(rs),
		})
		return true
	})

	var h heap.Interface
	if max {
		h = &rs
	} else {
		h = &byCountAsc[T]{byCountDesc: rs}
	}

	heap.Init(h)

	out := make([]Occurrence[T], k)
	for i := range out {
		out[i] = heap.Pop(h).(ranked[T]).Occurrence
	}

	return out
}
