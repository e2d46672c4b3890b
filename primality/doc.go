// Package primality implements the randomized Miller–Rabin probable-prime
// test over arbitrary-precision integers.
//
// 🚀 What is Miller–Rabin?
//
//	A probabilistic primality test. For an odd candidate n > 3, write
//	n-1 = d·2^s with d odd, then for each round draw a random witness
//	base a ∈ [2, n-2] and check whether
//	  a^d ≡ 1 (mod n), or
//	  a^(d·2^r) ≡ n-1 (mod n) for some 0 ≤ r < s.
//	A base failing both proves n composite. If every round passes, n is
//	“probably prime”.
//
// ✨ Key properties:
//   - One-sided error — a true prime is never misclassified; a composite
//     slips through a single round with probability ≤ 1/4, hence ≤ 4^-k
//     after k independent rounds. Rounds are the only confidence lever.
//   - Short-circuit — the first compositeness witness ends the test
//     immediately with a definite false.
//   - Exact arithmetic — all computation is math/big; modular
//     exponentiation is big.Int.Exp (square-and-multiply, cost
//     logarithmic in the exponent).
//   - Pluggable randomness — crypto/rand by default, a deterministic
//     seeded stream for reproducible runs, or any io.Reader.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numstream/primality"
//
//	ok, err := primality.IsProbablyPrime(big.NewInt(97), 5)
//	// ok == true
//
//	// Reproducible run:
//	opts := primality.DefaultOptions()
//	opts.Seed = 42
//	ok, err = primality.Test(candidate, opts)
//
// Edge policy: candidates ≤ 1 and even candidates above 2 are definite
// false; 2 and 3 are definite true. The randomized path only ever sees
// odd n > 3, so the witness range [2, n-2] is never degenerate.
//
// Errors:
//   - ErrNilCandidate      — nil candidate pointer.
//   - ErrNonPositiveRounds — rounds < 1.
//   - ErrRandSource        — the random source failed; wrapped, never
//     swallowed, and the candidate stays unclassified.
//
// ⚠️ This is a probable-prime test, not a primality proof. For
// trust-sensitive use (key generation), keep the default crypto/rand
// source and raise Rounds.
//
// Complexity: O(k · log³ n) with k rounds (one modular exponentiation
// per round dominates).
//
// See examples in example_test.go.
package primality
