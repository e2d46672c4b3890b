// Package primality defines options and sentinel errors for the
// Miller–Rabin test.
package primality

import (
	"errors"
	"io"
)

// Sentinel errors returned by the primality package.
var (
	// ErrNilCandidate indicates a nil *big.Int candidate was passed.
	ErrNilCandidate = errors.New("primality: candidate is nil")

	// ErrNonPositiveRounds indicates the requested round count was below 1.
	ErrNonPositiveRounds = errors.New("primality: rounds must be at least 1")

	// ErrRandSource indicates the random source failed while drawing a
	// witness base. The failure is wrapped and surfaced to the caller;
	// the candidate remains unclassified.
	ErrRandSource = errors.New("primality: random source failed")
)

// DefaultRounds is the default number of Miller–Rabin rounds, bounding
// the false-positive probability by 4^-10 ≈ 1e-6.
const DefaultRounds = 10

// Options configures a Miller–Rabin run.
//
// Rounds — number of independent witness rounds; must be ≥ 1.
// Rand   — witness-base source. When nil, Seed selects the source.
// Seed   — used only when Rand is nil: Seed != 0 ⇒ a deterministic
// seeded stream (reproducible runs); Seed == 0 ⇒ crypto/rand.
type Options struct {
	Rounds int
	Rand   io.Reader
	Seed   int64
}

// DefaultOptions returns the canonical configuration: DefaultRounds
// rounds drawn from crypto/rand.
func DefaultOptions() Options {
	return Options{Rounds: DefaultRounds}
}
