// Package primality - witness-base sampling.
//
// This file centralizes random source selection and the uniform draw of
// witness bases.
//
// Policy (mirrors the library-wide seeding convention):
//   - Rand set      ⇒ use it verbatim (tests, custom entropy).
//   - Seed != 0     ⇒ deterministic math/rand stream; same seed, same
//     witnesses, same verdicts.
//   - otherwise     ⇒ crypto/rand.Reader, the trust-sensitive default.
package primality

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"
	mathrand "math/rand"
)

// source resolves the witness-base reader for this run.
func (o Options) source() io.Reader {
	if o.Rand != nil {
		return o.Rand
	}
	if o.Seed != 0 {
		return mathrand.New(mathrand.NewSource(o.Seed))
	}

	return cryptorand.Reader
}

// uniformBig draws a uniform integer from the inclusive range [lo, hi].
// Sampling is rejection-based over the range's bit length (crypto/rand.Int),
// so the draw is unbiased for any reader. Reader failures propagate
// unmodified; the caller wraps them.
//
// Complexity: expected O(1) draws, each O(len(hi)) bytes.
func uniformBig(lo, hi *big.Int, src io.Reader) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne) // inclusive upper bound

	v, err := cryptorand.Int(src, span)
	if err != nil {
		return nil, err
	}

	return v.Add(v, lo), nil
}
