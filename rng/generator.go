package rng

import (
	"github.com/spikeekips/chacharand/big"
)

// Generator maps a seed to a pseudorandom value. Implementations must be
// pure: the same seed always gives the same value.
type Generator interface {
	Derive(seed big.U256) big.U256
}

// ChaCha20 derives the value from the first 32 bytes of the ChaCha20
// keystream keyed by the seed's big-endian bytes. Anyone who knows the
// seed can compute the value.
type ChaCha20 struct{}

func (ChaCha20) Derive(seed big.U256) big.U256 {
	return Derive(seed)
}

func Derive(seed big.U256) big.U256 {
	r := NewChaCha20Rng(seed.Bytes32())

	var out [big.WordLength]byte
	r.FillBytes(out[:])

	return big.U256FromBytes32(out)
}
