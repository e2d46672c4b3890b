package seq

import "iter"

// Number constrains sinks like Sum to the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Generate returns an infinite sequence that calls fn once per pulled
// element. The supplier runs lazily: no call happens until the consumer
// asks for a value.
//
// Bound the result with Take or TakeWhile before draining it.
//
// Complexity: O(1) per element plus the cost of fn.
func Generate[T any](fn func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(fn()) {
		}
	}
}

// Iterate returns the infinite sequence seed, next(seed), next(next(seed)), …
//
// The step function is applied lazily, once per pulled element.
//
// Complexity: O(1) per element plus the cost of next.
func Iterate[T any](seed T, next func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := seed; yield(v); v = next(v) {
		}
	}
}

// Range returns the half-open integer sequence [lo, hi).
// An empty sequence is returned when hi <= lo.
//
// Complexity: O(hi-lo).
func Range(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := lo; v < hi; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// RangeClosed returns the inclusive integer sequence [lo, hi].
// An empty sequence is returned when hi < lo.
//
// Complexity: O(hi-lo+1).
func RangeClosed(lo, hi int) iter.Seq[int] {
	return Range(lo, hi+1)
}
