package rng

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/suite"
)

// RFC 8439 A.1, test vectors #1 and #2: zero key, zero nonce, block
// counter 0 and 1.
const (
	zeroKeyBlock0 = "76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7" +
		"da41597c5157488d7724e03fb8d84a376a43b8f41518a11cc387b669b2ee6586"
	zeroKeyBlock1Prefix = "9f07e7be5551387a98ba977c732d080d"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}

type testChaCha20Rng struct {
	suite.Suite
}

func (t *testChaCha20Rng) TestKeystream() {
	r := NewChaCha20Rng([KeyLength]byte{})

	b := make([]byte, BlockLength)
	r.FillBytes(b)
	t.Equal(mustHex(zeroKeyBlock0), b)

	next := make([]byte, 16)
	r.FillBytes(next)
	t.Equal(mustHex(zeroKeyBlock1Prefix), next)
}

func (t *testChaCha20Rng) TestSpanningBlocks() {
	r := NewChaCha20Rng([KeyLength]byte{})

	b := make([]byte, BlockLength+16)
	r.FillBytes(b)
	t.Equal(mustHex(zeroKeyBlock0+zeroKeyBlock1Prefix), b)
}

func (t *testChaCha20Rng) TestNextUint() {
	{
		r := NewChaCha20Rng([KeyLength]byte{})
		t.Equal(uint32(0xade0b876), r.NextUint32())
		t.Equal(uint32(0x903df1a0), r.NextUint32())
	}

	{
		r := NewChaCha20Rng([KeyLength]byte{})
		t.Equal(uint64(0x903df1a0ade0b876), r.NextUint64())
	}
}

func (t *testChaCha20Rng) TestNextUint64AcrossBlock() {
	r := NewChaCha20Rng([KeyLength]byte{})

	skip := make([]byte, BlockLength-4)
	r.FillBytes(skip)

	// last word of block 0 is the low half, first word of block 1 the high
	// half.
	t.Equal(uint64(0xbee7079f8665eeb2), r.NextUint64())
}

func (t *testChaCha20Rng) TestPartialWordDiscarded() {
	r := NewChaCha20Rng([KeyLength]byte{})

	b := make([]byte, 3)
	r.FillBytes(b)
	t.Equal(mustHex("76b8e0"), b)

	// the 4th byte of the first word is skipped
	t.Equal(uint32(0x903df1a0), r.NextUint32())
}

func (t *testChaCha20Rng) TestRead() {
	a := NewChaCha20Rng([KeyLength]byte{0x01})
	b := NewChaCha20Rng([KeyLength]byte{0x01})

	pa := make([]byte, 200)
	n, err := a.Read(pa)
	t.NoError(err)
	t.Equal(len(pa), n)

	pb := make([]byte, 200)
	b.FillBytes(pb)

	t.Equal(pa, pb)
}

func (t *testChaCha20Rng) TestDifferentSeeds() {
	a := NewChaCha20Rng([KeyLength]byte{})

	var key [KeyLength]byte
	key[KeyLength-1] = 0x01
	b := NewChaCha20Rng(key)

	pa := make([]byte, 32)
	pb := make([]byte, 32)
	a.FillBytes(pa)
	b.FillBytes(pb)

	t.False(bytes.Equal(pa, pb))
}

func TestChaCha20Rng(t *testing.T) {
	suite.Run(t, new(testChaCha20Rng))
}
