package bag

// tally maps keys to positive counts and remembers the order in which
// keys were first inserted. It is a map combined with a linked list,
// so lookups are constant-time and iteration order is stable.
// tally is not safe for concurrent use.
type tally[T comparable] struct {
	m map[T]*node[T]

	head, tail *node[T]

	// sum of all counts
	size int
}

type node[T comparable] struct {
	key   T
	count int

	prev, next *node[T]
}

func newTally[T comparable](hint int) *tally[T] {
	return &tally[T]{
		m: make(map[T]*node[T], hint),
	}
}

func (t *tally[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		if t.head != n {
			panic("node has no previous node but it is not the head")
		}
		t.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		if t.tail != n {
			panic("node has no next node but it is not the tail")
		}
		t.tail = n.prev
	}

	n.prev, n.next = nil, nil
}

func (t *tally[T]) push(n *node[T]) {
	if t.head == nil && t.tail == nil {
		t.head, t.tail = n, n
		return
	}

	n.prev = t.tail
	t.tail.next = n
	n.next = nil
	t.tail = n
}

func (t *tally[T]) get(k T) int {
	n, ok := t.m[k]
	if !ok {
		return 0
	}
	return n.count
}

// incr adds c to the count of k, appending k if it is new.
// c must be positive.
func (t *tally[T]) incr(k T, c int) {
	n, ok := t.m[k]
	if !ok {
		n = &node[T]{key: k}
		t.m[k] = n
		t.push(n)
	}

	n.count += c
	t.size += c
}

// decr subtracts c from the count of k. If the count drops to zero
// or below, k is removed. decr reports whether k was present.
func (t *tally[T]) decr(k T, c int) bool {
	n, ok := t.m[k]
	if !ok {
		return false
	}

	if c >= n.count {
		t.size -= n.count
		t.unlink(n)
		delete(t.m, k)
		return true
	}

	n.count -= c
	t.size -= c
	return true
}

func (t *tally[_]) distinct() int {
	return len(t.m)
}

// forEach calls f for every key in first-insertion order.
// Iteration stops early if f returns false.
// The result of modifying the tally while iterating over it is undefined.
func (t *tally[T]) forEach(f func(k T, count int) bool) {
	if t.head == nil {
		return
	}

	hare := t.head.next

	for n := t.head; n != nil; n = n.next {
		if n == hare {
			// bug in the tally, not in the caller
			panic("cycle detected, iteration will not end")
		}

		if !f(n.key, n.count) {
			break
		}

		if hare != nil && hare.next != nil {
			hare = hare.next.next
		} else {
			hare = nil
		}
	}
}

// clone returns a copy with the same counts and the same order.
func (t *tally[T]) clone() *tally[T] {
	cp := newTally[T](t.distinct())

	t.forEach(func(k T, count int) bool {
		cp.incr(k, count)
		return true
	})

	return cp
}

func (t *tally[T]) toMap() map[T]int {
	m := make(map[T]int, t.distinct())

	for k, n := range t.m {
		m[k] = n.count
	}

	return m
}
