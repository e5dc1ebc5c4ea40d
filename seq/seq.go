// Package seq has slice helpers for walking an object graph before the
// results are counted into a bag or collected into a numeric list.
package seq

import (
	"fmt"
	"strings"
)

// Collect maps every element of source through f, keeping order.
func Collect[S ~[]E, E, R any](source S, f func(E) R) []R {
	out := make([]R, 0, len(source))

	for _, el := range source {
		out = append(out, f(el))
	}

	return out
}

// FlatCollect maps every element of source to a slice through f and
// concatenates the results in order.
// Example, with f returning a person's pets:
// { {Mary: [Tabby]}, {Bob: [Dolly, Spot]} } -> {Tabby, Dolly, Spot}
func FlatCollect[S ~[]E, E, R any](source S, f func(E) []R) []R {
	out := make([]R, 0, len(source))

	for _, el := range source {
		out = append(out, f(el)...)
	}

	return out
}

// DetectWith returns the first element of source for which
// pred(element, param) is true. If there is none, ok is false.
func DetectWith[S ~[]E, E, P any](source S, pred func(E, P) bool, param P) (found E, ok bool) {
	for _, el := range source {
		if pred(el, param) {
			return el, true
		}
	}

	return
}

// MakeString formats every element with %v and joins them with sep.
func MakeString[S ~[]E, E any](source S, sep string) string {
	var sb strings.Builder

	for i, el := range source {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, el)
	}

	return sb.String()
}
