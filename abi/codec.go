package abi

import (
	"github.com/spikeekips/chacharand/big"
)

const WordLength = big.WordLength

// CallMinLength is the shortest call envelope carrying one word argument.
const CallMinLength = SelectorLength + WordLength

// EncodeWord returns the 32-byte big-endian form of v, left padded with
// zeros.
func EncodeWord(v big.U256) []byte {
	b := v.Bytes32()
	return b[:]
}

func DecodeWord(b []byte) (big.U256, error) {
	if len(b) != WordLength {
		return big.U256{}, InvalidWordError.Newf("length=%d", len(b))
	}

	var w [WordLength]byte
	copy(w[:], b)

	return big.U256FromBytes32(w), nil
}

// EncodeOutput builds the reply envelope of a single uint256 return value.
func EncodeOutput(v big.U256) []byte {
	return EncodeWord(v)
}

// DecodeOutput reads the reply envelope built by EncodeOutput.
func DecodeOutput(b []byte) (big.U256, error) {
	if len(b) < WordLength {
		return big.U256{}, MalformedInputError.Newf("output length=%d; expected=%d", len(b), WordLength)
	}

	return DecodeWord(b[:WordLength])
}

func EncodeCall(selector Selector, args ...big.U256) []byte {
	b := make([]byte, 0, SelectorLength+WordLength*len(args))
	b = append(b, selector[:]...)

	for _, a := range args {
		b = append(b, EncodeWord(a)...)
	}

	return b
}

// SplitCall separates the selector from the argument bytes.
func SplitCall(call []byte) (Selector, []byte, error) {
	if len(call) < SelectorLength {
		return Selector{}, nil, MalformedInputError.Newf("call length=%d; selector missing", len(call))
	}

	var s Selector
	copy(s[:], call[:SelectorLength])

	return s, call[SelectorLength:], nil
}

// DecodeWords reads the first n words of args. Bytes after them are
// ignored.
func DecodeWords(args []byte, n int) ([]big.U256, error) {
	if len(args) < n*WordLength {
		return nil, MalformedInputError.Newf(
			"arguments length=%d; expected at least %d", len(args), n*WordLength,
		)
	}

	words := make([]big.U256, n)
	for i := range words {
		w, err := DecodeWord(args[i*WordLength : (i+1)*WordLength])
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	return words, nil
}

// DecodeSeed strips the selector from call and reads the single uint256
// argument.
func DecodeSeed(call []byte) (big.U256, error) {
	if len(call) < CallMinLength {
		return big.U256{}, MalformedInputError.Newf(
			"call length=%d; expected at least %d", len(call), CallMinLength,
		)
	}

	_, args, err := SplitCall(call)
	if err != nil {
		return big.U256{}, err
	}

	words, err := DecodeWords(args, 1)
	if err != nil {
		return big.U256{}, err
	}

	return words[0], nil
}
