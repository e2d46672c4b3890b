// Package seq provides generic, pull-based lazy sequence combinators
// built on the standard iter.Seq type.
//
// 🚀 What is seq?
//
//	A tiny functional toolkit for composing possibly-infinite streams:
//	  • Sources:    Generate (supplier), Iterate (seed + step), Range
//	  • Transforms: Map, Filter, Take, TakeWhile, Skip
//	  • Sinks:      Reduce, Sum, Count, Collect, Sorted, ForEach, First
//
// ✨ Key properties:
//   - Laziness — nothing runs until a sink pulls; Take(s, n) pulls at
//     most n elements from s, so infinite sources are safe.
//   - Purity — combinators never mutate their inputs; each call builds
//     a fresh sequence closure.
//   - Zero dependencies — only iter from the standard library.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numstream/seq"
//
//	// Sum of squares of 1..5 → 55
//	total := seq.Sum(seq.Map(seq.RangeClosed(1, 5), func(n int) int { return n * n }))
//
//	// First 6 powers of two: 1 2 4 8 16 32
//	powers := seq.Collect(seq.Take(seq.Iterate(1, func(n int) int { return n * 2 }), 6))
//
// Infinite sources (Generate, Iterate) must be bounded by Take or
// TakeWhile before any sink that drains the whole sequence (Sum, Count,
// Collect, Reduce) — draining an unbounded source never returns.
//
// See examples in example_test.go.
package seq
