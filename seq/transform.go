package seq

import "iter"

// Map returns the sequence fn(v) for each v in s, in order.
// The transform runs lazily, once per pulled element.
//
// Complexity: O(1) per element plus the cost of fn.
func Map[T, U any](s iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter returns the subsequence of s for which keep reports true.
//
// Complexity: O(1) per inspected element plus the cost of keep.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Take returns at most the first n elements of s.
// It pulls no more than n elements from s, so s may be infinite.
// For n <= 0 the result is empty and s is never pulled.
//
// Complexity: O(min(n, len(s))).
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range s {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// TakeWhile returns the longest prefix of s for which keep reports true.
// The first element failing keep terminates the stream and is not yielded.
//
// Complexity: O(len(prefix)+1).
func TakeWhile[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !keep(v) || !yield(v) {
				return
			}
		}
	}
}

// Skip returns s without its first n elements.
// For n <= 0 the sequence is returned unchanged.
//
// Complexity: O(n) to discard, then O(1) per element.
func Skip[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		remaining := n
		for v := range s {
			if remaining > 0 {
				remaining--
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
