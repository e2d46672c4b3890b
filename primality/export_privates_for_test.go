package primality

import (
	"io"
	"math/big"
)

// Test-only aliases for white-box coverage of the sampling and
// decomposition internals.

// Decompose exposes decompose for tests.
func Decompose(m *big.Int) (*big.Int, uint) { return decompose(m) }

// UniformBig exposes uniformBig for tests.
func UniformBig(lo, hi *big.Int, src io.Reader) (*big.Int, error) {
	return uniformBig(lo, hi, src)
}

// SourceOf exposes the option-to-reader resolution for tests.
func SourceOf(o Options) io.Reader { return o.source() }
