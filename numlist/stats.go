package numlist

import "golang.org/x/exp/constraints"

// Stats holds the aggregates of a List. For an empty list, Count and Sum
// are zero and Min, Max and Average carry no meaning.
type Stats[N constraints.Integer] struct {
	Count   int
	Sum     N
	Min     N
	Max     N
	Average float64
}

// SummaryStatistics computes all aggregates in a single pass.
// Nothing is cached, so the result always reflects the current values.
func (l *List[N]) SummaryStatistics() Stats[N] {
	var st Stats[N]

	for i, v := range l.values {
		if i == 0 || v < st.Min {
			st.Min = v
		}
		if i == 0 || v > st.Max {
			st.Max = v
		}
		st.Sum += v
	}

	st.Count = len(l.values)
	if st.Count > 0 {
		st.Average = average(st.Sum, st.Count)
	}

	return st
}

func average[N constraints.Integer](sum N, count int) float64 {
	return float64(sum) / float64(count)
}

// Sum returns the sum of all values, or 0 for an empty list.
func (l *List[N]) Sum() N {
	var sum N
	for _, v := range l.values {
		sum += v
	}
	return sum
}

// Min returns the smallest value. ok is false if the list is empty.
func (l *List[N]) Min() (min N, ok bool) {
	if len(l.values) == 0 {
		return
	}

	min = l.values[0]
	for _, v := range l.values[1:] {
		if v < min {
			min = v
		}
	}

	return min, true
}

// Max returns the largest value. ok is false if the list is empty.
func (l *List[N]) Max() (max N, ok bool) {
	if len(l.values) == 0 {
		return
	}

	max = l.values[0]
	for _, v := range l.values[1:] {
		if v > max {
			max = v
		}
	}

	return max, true
}

// Average returns the arithmetic mean as sum / count.
// ok is false if the list is empty.
func (l *List[N]) Average() (avg float64, ok bool) {
	if len(l.values) == 0 {
		return
	}

	return average(l.Sum(), len(l.values)), true
}

// MinIfEmpty returns the smallest value, or def if the list is empty.
func (l *List[N]) MinIfEmpty(def N) N {
	if min, ok := l.Min(); ok {
		return min
	}
	return def
}

// MaxIfEmpty returns the largest value, or def if the list is empty.
func (l *List[N]) MaxIfEmpty(def N) N {
	if max, ok := l.Max(); ok {
		return max
	}
	return def
}

// AverageIfEmpty returns the mean, or def if the list is empty.
func (l *List[N]) AverageIfEmpty(def float64) float64 {
	if avg, ok := l.Average(); ok {
		return avg
	}
	return def
}
