package xorshift

import "iter"

// Mult is the canonical xorshift64* output multiplier (Vigna 2014).
// It is an odd constant chosen for strong high-bit scrambling.
const Mult uint64 = 0x2545F4914F6CDD1D

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The xorshift state must be non-zero; the value is arbitrary but stable
// to keep reproducible defaults.
const defaultSeed uint64 = 1

// Gen is an xorshift64* generator. The zero value is not usable;
// construct with New.
//
// Gen satisfies math/rand.Source64. It is NOT goroutine-safe: do not
// share a *Gen across goroutines — create one per worker instead.
type Gen struct {
	state uint64
}

// New returns a deterministic xorshift64* generator.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *Gen {
	g := &Gen{}
	g.Seed(seed)

	return g
}

// Seed resets the generator state. seed==0 maps to the fixed default
// seed, keeping the state non-zero as the algorithm requires.
func (g *Gen) Seed(seed int64) {
	if seed == 0 {
		g.state = defaultSeed

		return
	}
	g.state = uint64(seed)
}

// Uint64 advances the state and returns the next xorshift64* output.
//
// Complexity: O(1), no allocations.
func (g *Gen) Uint64() uint64 {
	x := g.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.state = x

	return x * Mult
}

// Int63 returns a non-negative 63-bit value, satisfying math/rand.Source.
func (g *Gen) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Values returns the infinite lazy stream of generator outputs.
// Iterating advances g; two iterations of the same Values sequence
// continue the stream rather than replaying it.
//
// Bound with seq.Take (or break out of the range loop) before draining.
func (g *Gen) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for yield(g.Uint64()) {
		}
	}
}
