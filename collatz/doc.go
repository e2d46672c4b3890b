// Package collatz computes Collatz (3n+1) sequences: eager full paths
// with a step budget, lazy unbounded walks, and stopping times.
//
// 🚀 What is the Collatz sequence?
//
//	Start from a positive integer n and repeat:
//	  n even → n/2
//	  n odd  → 3n+1
//	The (unproven) Collatz conjecture says every start reaches 1.
//
// ✨ Key features:
//   - Path — the full trajectory n … 1 as a slice, guarded by MaxSteps
//     so an unexpectedly long orbit returns ErrStepBudget instead of
//     spinning forever.
//   - Walk — the same trajectory as a lazy iter.Seq, for composing with
//     the seq package without materializing anything.
//   - Steps — just the stopping time (number of applications of Next).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numstream/collatz"
//
//	path, err := collatz.Path(27, nil)
//	if err != nil {
//	  // ErrNonPositive or ErrStepBudget
//	}
//	fmt.Println(len(path)) // 112
//
// Errors:
//   - ErrNonPositive — starting value < 1.
//   - ErrStepBudget  — MaxSteps applications of Next did not reach 1.
//
// Complexity: O(k) time, where k is the stopping time; Path uses O(k)
// space, Walk and Steps O(1).
//
// See examples in example_test.go.
package collatz
