package rng

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

const (
	KeyLength     = chacha20.KeySize
	BlockLength   = 64
	wordLength    = 4
	wordsPerBlock = BlockLength / wordLength
)

// ChaCha20Rng is a ChaCha20 keystream generator keyed by a 32-byte seed
// with an all-zero nonce and block counter starting at 0.
//
// Output is consumed in 32-bit little-endian words. When FillBytes takes
// only part of a word, the rest of that word is discarded and the next
// read starts at the following word.
//
// The block counter is 32 bits wide; the generator panics after 2^32
// blocks (256 GiB) of output.
type ChaCha20Rng struct {
	cipher *chacha20.Cipher
	block  [BlockLength]byte
	index  int
}

func NewChaCha20Rng(seed [KeyLength]byte) *ChaCha20Rng {
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// key and nonce have fixed, valid sizes
		panic(err)
	}

	return &ChaCha20Rng{cipher: c, index: wordsPerBlock}
}

func (r *ChaCha20Rng) refill() {
	for i := range r.block {
		r.block[i] = 0
	}

	r.cipher.XORKeyStream(r.block[:], r.block[:])
	r.index = 0
}

func (r *ChaCha20Rng) NextUint32() uint32 {
	if r.index >= wordsPerBlock {
		r.refill()
	}

	v := binary.LittleEndian.Uint32(r.block[r.index*wordLength:])
	r.index++

	return v
}

func (r *ChaCha20Rng) NextUint64() uint64 {
	lo := uint64(r.NextUint32())
	hi := uint64(r.NextUint32())

	return hi<<32 | lo
}

func (r *ChaCha20Rng) FillBytes(dest []byte) {
	for read := 0; read < len(dest); {
		if r.index >= wordsPerBlock {
			r.refill()
		}

		n := copy(dest[read:], r.block[r.index*wordLength:])
		r.index += (n + wordLength - 1) / wordLength
		read += n
	}
}

// Read implements io.Reader; it never fails.
func (r *ChaCha20Rng) Read(p []byte) (int, error) {
	r.FillBytes(p)

	return len(p), nil
}
