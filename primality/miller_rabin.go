package primality

import (
	"fmt"
	"math/big"
)

// Shared small constants; read-only, never mutated.
var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// IsProbablyPrime reports whether n is probably prime after the given
// number of Miller–Rabin rounds with crypto/rand witness bases.
// It is shorthand for Test with DefaultOptions and Rounds overridden.
func IsProbablyPrime(n *big.Int, rounds int) (bool, error) {
	opts := DefaultOptions()
	opts.Rounds = rounds

	return Test(n, opts)
}

// Test — randomized Miller–Rabin probable-prime test.
//
// Description:
//
//	Classifies n as “probably prime” (true) or composite (false) using
//	opts.Rounds independent random witness rounds.
//
// Algorithm Outline:
//  1. Definite verdicts: n ≤ 1 → false; n ∈ {2,3} → true; even → false.
//  2. Decompose n-1 = d·2^s with d odd (once per candidate).
//  3. Per round: draw a uniformly from [2, n-2]; if a witnesses
//     compositeness, return false immediately — no further rounds run.
//  4. All rounds passed → true.
//
// A true prime always returns true regardless of the drawn bases; a
// composite returns true with probability ≤ 4^-Rounds.
//
// Complexity:
//
//	Time   = O(Rounds · log³ n)
//	Memory = O(log n)
//
// Errors:
//   - ErrNilCandidate      — n is nil.
//   - ErrNonPositiveRounds — opts.Rounds < 1.
//   - ErrRandSource        — witness draw failed (wraps the source error).
func Test(n *big.Int, opts Options) (bool, error) {
	if n == nil {
		return false, ErrNilCandidate
	}
	if opts.Rounds < 1 {
		return false, ErrNonPositiveRounds
	}

	// Definite small and even verdicts keep the witness range [2, n-2]
	// non-degenerate on the randomized path.
	if n.Cmp(bigOne) <= 0 {
		return false, nil
	}
	if n.Cmp(bigThree) <= 0 {
		return true, nil // 2 and 3
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	nMinus1 := new(big.Int).Sub(n, bigOne)
	d, s := decompose(nMinus1)
	hi := new(big.Int).Sub(n, bigTwo)
	src := opts.source()

	for round := 0; round < opts.Rounds; round++ {
		a, err := uniformBig(bigTwo, hi, src)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrRandSource, err)
		}
		if witness(n, nMinus1, d, s, a) {
			return false, nil // compositeness proven; short-circuit
		}
	}

	return true, nil
}

// Witness reports whether base a proves that n is not prime in a
// single Miller–Rabin round. A false result means a is consistent with
// n being prime — for a composite n such an a is a “strong liar”.
//
// Candidates with a definite verdict never reach the round logic:
// n ≤ 1 and even n > 2 return true for any base, 2 and 3 return false.
// The randomized round only ever runs for odd n > 3 with a in [2, n-2].
//
// Complexity: O(log³ n), dominated by one modular exponentiation.
func Witness(n, a *big.Int) bool {
	if n.Cmp(bigOne) <= 0 {
		return true
	}
	if n.Cmp(bigThree) <= 0 {
		return false // 2 and 3 are prime; no base can witness against them
	}
	if n.Bit(0) == 0 {
		return true
	}

	nMinus1 := new(big.Int).Sub(n, bigOne)
	d, s := decompose(nMinus1)

	return witness(n, nMinus1, d, s, a)
}

// witness runs one round against a pre-computed decomposition
// n-1 = d·2^s. Returns true when a proves n composite.
func witness(n, nMinus1, d *big.Int, s uint, a *big.Int) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
		return false
	}
	for r := uint(1); r < s; r++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return false
		}
	}

	return true
}

// decompose splits an even m into (d, s) with m = d·2^s and d odd.
// For odd m it returns (m copy, 0). m must be positive; both callers
// only ever pass n-1 for odd n > 3.
//
// Complexity: O(s) bit probes plus one shift.
func decompose(m *big.Int) (*big.Int, uint) {
	s := uint(0)
	for m.Bit(int(s)) == 0 {
		s++
	}
	d := new(big.Int).Rsh(m, s)

	return d, s
}
