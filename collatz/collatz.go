package collatz

import "iter"

// Next returns the Collatz successor of n: n/2 when n is even,
// 3n+1 when n is odd. Next(1) is 4, continuing the 4→2→1 cycle;
// termination handling belongs to Path/Walk/Steps, not the step rule.
//
// Complexity: O(1).
func Next(n int64) int64 {
	if n%2 == 0 {
		return n / 2
	}

	return 3*n + 1
}

// Path — eager Collatz trajectory.
//
// Description:
//
//	Returns the full sequence n, Next(n), …, 1 (inclusive on both ends).
//	Passing opts==nil applies DefaultOptions.
//
// Algorithm Outline:
//  1. Validate: n >= 1, else ErrNonPositive.
//  2. Append n; while the last value is not 1, append its successor.
//  3. Abort with ErrStepBudget (and a nil slice) after MaxSteps
//     applications of Next without reaching 1.
//
// Complexity:
//
//	Time   = O(k), k = stopping time of n
//	Memory = O(k)
//
// Errors:
//   - ErrNonPositive — n < 1.
//   - ErrStepBudget  — budget exhausted before reaching 1.
func Path(n int64, opts *Options) ([]int64, error) {
	if n < 1 {
		return nil, ErrNonPositive
	}
	budget := DefaultMaxSteps
	if opts != nil && opts.MaxSteps >= 1 {
		budget = opts.MaxSteps
	}

	path := []int64{n}
	v := n
	for steps := 0; v != 1; steps++ {
		if steps == budget {
			return nil, ErrStepBudget
		}
		v = Next(v)
		path = append(path, v)
	}

	return path, nil
}

// Steps returns the stopping time of n: the number of Next applications
// needed to reach 1. Steps(1) is 0. Same option and error semantics as
// Path, with O(1) memory.
func Steps(n int64, opts *Options) (int, error) {
	if n < 1 {
		return 0, ErrNonPositive
	}
	budget := DefaultMaxSteps
	if opts != nil && opts.MaxSteps >= 1 {
		budget = opts.MaxSteps
	}

	steps := 0
	for v := n; v != 1; steps++ {
		if steps == budget {
			return 0, ErrStepBudget
		}
		v = Next(v)
	}

	return steps, nil
}

// Walk returns the trajectory of n as a lazy sequence: n first, then
// each successor, ending after 1 is yielded. Starts below 1 yield
// nothing — the lazy API has no error channel, so the validation
// sentinel lives in Path/Steps.
//
// No step budget applies: the consumer bounds the walk (seq.Take) or
// relies on termination at 1.
//
// Complexity: O(1) memory; O(k) time if fully drained.
func Walk(n int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if n < 1 {
			return
		}
		for v := n; ; v = Next(v) {
			if !yield(v) || v == 1 {
				return
			}
		}
	}
}
