package contract

import (
	"github.com/spikeekips/chacharand/abi"
	"github.com/spikeekips/chacharand/big"
	"github.com/spikeekips/chacharand/rng"
)

// RandomGenerator exposes getRandomNumber(uint256) -> uint256. It keeps no
// state between calls.
type RandomGenerator struct {
	*Router
	generator rng.Generator
}

func NewRandomGenerator() *RandomGenerator {
	g := &RandomGenerator{
		Router:    NewRouter(),
		generator: rng.ChaCha20{},
	}

	if err := g.Register(GetRandomNumberSignature, g.getRandomNumber); err != nil {
		panic(err)
	}

	return g
}

func (g *RandomGenerator) SetGenerator(generator rng.Generator) *RandomGenerator {
	g.generator = generator

	return g
}

func (g *RandomGenerator) Deploy() {}

func (g *RandomGenerator) GetRandomNumber(seed big.U256) big.U256 {
	return g.generator.Derive(seed)
}

func (g *RandomGenerator) getRandomNumber(call []byte) ([]byte, error) {
	seed, err := abi.DecodeSeed(call)
	if err != nil {
		return nil, err
	}

	return abi.EncodeOutput(g.GetRandomNumber(seed)), nil
}
