package rng

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"github.com/spikeekips/chacharand/big"
)

type testGenerator struct {
	suite.Suite
}

func (t *testGenerator) representatives() []big.U256 {
	return []big.U256{
		big.ZeroU256,
		big.NewU256(1),
		big.NewU256(42),
		big.MustParseU256("0xffffffffffffffffffffffffffffffff"), // 2^128 - 1
	}
}

func (t *testGenerator) TestKnownAnswer() {
	out := Derive(big.ZeroU256)
	t.Equal(
		"0x76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7",
		out.Hex(),
	)
}

func (t *testGenerator) TestTotal() {
	for _, seed := range append(t.representatives(), big.MaxU256) {
		t.NotPanics(func() { _ = Derive(seed) }, seed.Hex())
	}
}

func (t *testGenerator) TestDeterministic() {
	for _, seed := range append(t.representatives(), big.MaxU256) {
		a := Derive(seed)
		b := ChaCha20{}.Derive(seed)

		t.True(a.Equal(b), seed.Hex())
	}
}

func (t *testGenerator) TestNotIdentity() {
	for _, seed := range t.representatives() {
		out := Derive(seed)

		t.False(out.Equal(seed), seed.Hex())
		t.False(out.IsZero(), seed.Hex())
	}
}

func (t *testGenerator) TestSeedsDiffer() {
	zero := Derive(big.ZeroU256)
	one := Derive(big.NewU256(1))

	t.False(zero.Equal(one))
	t.False(zero.Equal(big.ZeroU256))
	t.False(one.Equal(big.NewU256(1)))
}

func (t *testGenerator) TestUsesFullSeed() {
	// seeds which differ only in the most significant byte
	a := big.MustParseU256("0x0100000000000000000000000000000000000000000000000000000000000000")
	b := big.MustParseU256("0x0200000000000000000000000000000000000000000000000000000000000000")

	t.False(Derive(a).Equal(Derive(b)))
}

func (t *testGenerator) TestConcurrent() {
	seeds := make([]big.U256, 64)
	for i := range seeds {
		seeds[i] = big.NewU256(uint64(i))
	}

	expected := make([]big.U256, len(seeds))
	for i, seed := range seeds {
		expected[i] = Derive(seed)
	}

	var gen Generator = ChaCha20{}

	results := make([]big.U256, len(seeds))

	var eg errgroup.Group
	for i := range seeds {
		i := i
		eg.Go(func() error {
			results[i] = gen.Derive(seeds[i])
			return nil
		})
	}
	t.NoError(eg.Wait())

	for i := range seeds {
		t.True(expected[i].Equal(results[i]), seeds[i].String())
	}
}

func TestGenerator(t *testing.T) {
	suite.Run(t, new(testGenerator))
}
