// Package xorshift implements the xorshift64* pseudorandom number
// generator: a 64-bit xorshift state transition followed by a fixed
// odd multiplier that scrambles the output.
//
// 🚀 What is xorshift64*?
//
//	A tiny, fast, statistically solid PRNG (Vigna 2014):
//	  state transition: x ^= x>>12; x ^= x<<25; x ^= x>>27
//	  output:           state * 0x2545F4914F6CDD1D
//	Period 2^64-1 over all non-zero states.
//
// ✨ Key properties:
//   - Deterministic — same seed ⇒ identical stream across platforms.
//   - Seed policy — seed 0 maps to a fixed default seed, since the
//     xorshift state must never be zero.
//   - Composable — Gen satisfies math/rand.Source64, so it can drive
//     rand.New for floats, shuffles and distributions; Values exposes
//     the raw output stream as a lazy iter.Seq for pipelines.
//
// ⚠️ Not cryptographically secure. For trust-sensitive randomness use
// crypto/rand (see the primality package's witness sampling).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numstream/xorshift"
//
//	g := xorshift.New(42)
//	fmt.Printf("%016X\n", g.Uint64())
//
//	// As a math/rand source:
//	r := rand.New(xorshift.New(42))
//	fmt.Println(r.Float64())
//
// Complexity: O(1) per output, zero allocations after New.
//
// See examples in example_test.go.
package xorshift
