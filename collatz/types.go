// Package collatz defines options and sentinel errors for Collatz walks.
package collatz

import "errors"

// Sentinel errors returned by the collatz package.
var (
	// ErrNonPositive indicates the starting value was below 1; the
	// sequence is only defined over positive integers.
	ErrNonPositive = errors.New("collatz: starting value must be positive")

	// ErrStepBudget indicates the walk did not reach 1 within MaxSteps
	// applications of Next.
	ErrStepBudget = errors.New("collatz: step budget exceeded before reaching 1")
)

// DefaultMaxSteps is the default step budget for Path and Steps.
// Every start below 2^60 is known empirically to stop well within it;
// the budget exists to keep the eager API total.
const DefaultMaxSteps = 10_000

// Options configures the eager Collatz walk.
//
// MaxSteps — maximum number of Next applications before giving up with
// ErrStepBudget. Values < 1 fall back to DefaultMaxSteps.
type Options struct {
	MaxSteps int
}

// DefaultOptions returns the canonical configuration: a DefaultMaxSteps
// budget.
func DefaultOptions() Options {
	return Options{MaxSteps: DefaultMaxSteps}
}
