package bag

// Immutable is a read-only snapshot of a Bag. It is never modified after
// it is created, so it is safe for concurrent use by multiple goroutines.
type Immutable[T comparable] struct {
	t *tally[T]
}

func (im *Immutable[T]) OccurrencesOf(el T) int {
	return im.t.get(el)
}

func (im *Immutable[T]) Size() int {
	return im.t.size
}

func (im *Immutable[T]) DistinctCount() int {
	return im.t.distinct()
}

func (im *Immutable[T]) IsEmpty() bool {
	return im.t.size == 0
}

// ForEach is like Bag.ForEach.
func (im *Immutable[T]) ForEach(f func(el T, count int) bool) {
	im.t.forEach(f)
}

// TopOccurrences is like Bag.TopOccurrences.
func (im *Immutable[T]) TopOccurrences(k int) []Occurrence[T] {
	return selectk(im.t, k, true)
}

// BottomOccurrences is like Bag.BottomOccurrences.
func (im *Immutable[T]) BottomOccurrences(k int) []Occurrence[T] {
	return selectk(im.t, k, false)
}

func (im *Immutable[T]) Equal(other Reader[T]) bool {
	return equal[T](im, other)
}

func (im *Immutable[T]) ToMap() map[T]int {
	return im.t.toMap()
}

// ToBag returns a mutable copy of the snapshot.
func (im *Immutable[T]) ToBag() *Bag[T] {
	return &Bag[T]{t: im.t.clone()}
}

func (im *Immutable[T]) String() string {
	return format(im.t)
}
