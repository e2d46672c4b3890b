package seq

import (
	"cmp"
	"iter"
	"slices"
)

// Reduce folds s left-to-right into an accumulator starting at init.
// Draining: do not call on an unbounded sequence.
//
// Complexity: O(len(s)) plus the cost of fn per element.
func Reduce[T, A any](s iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for v := range s {
		acc = fn(acc, v)
	}

	return acc
}

// Sum returns the sum of all elements of s. Draining.
//
// Complexity: O(len(s)).
func Sum[T Number](s iter.Seq[T]) T {
	var total T
	for v := range s {
		total += v
	}

	return total
}

// Count returns the number of elements in s. Draining.
//
// Complexity: O(len(s)).
func Count[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}

	return n
}

// Collect materializes s into a freshly allocated slice. Draining.
// An empty sequence yields a nil slice.
//
// Complexity: O(len(s)) time and space.
func Collect[T any](s iter.Seq[T]) []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}

	return out
}

// ForEach invokes fn on every element of s, in order. Draining.
//
// Complexity: O(len(s)) plus the cost of fn per element.
func ForEach[T any](s iter.Seq[T], fn func(T)) {
	for v := range s {
		fn(v)
	}
}

// Sorted materializes s into an ascending slice, online: each arriving
// element is inserted at its position immediately, so the accumulator
// is sorted after every pull — a streaming insertion sort. Draining.
// An empty sequence yields a nil slice.
//
// Complexity: O(n log n) comparisons but O(n²) element moves in the
// worst case; when the whole input is at hand anyway, Collect followed
// by slices.Sort is the cheaper route.
func Sorted[T cmp.Ordered](s iter.Seq[T]) []T {
	var out []T
	for v := range s {
		i, _ := slices.BinarySearch(out, v)
		out = slices.Insert(out, i, v)
	}

	return out
}

// First returns the first element of s and true, or the zero value and
// false when s is empty. Pulls at most one element, so s may be infinite.
//
// Complexity: O(1).
func First[T any](s iter.Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}
	var zero T

	return zero, false
}
