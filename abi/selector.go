package abi

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const SelectorLength = 4

var signatureRegex = regexp.MustCompile(`^\w+\((\w+(\[\d*\])*(,\w+(\[\d*\])*)*)?\)$`)

// Selector is the first 4 bytes of the keccak256 hash of a canonical
// function signature, like "getRandomNumber(uint256)".
type Selector [SelectorLength]byte

func NewSelector(signature string) (Selector, error) {
	if !signatureRegex.MatchString(signature) {
		return Selector{}, InvalidSignatureError.Newf("signature=%q", signature)
	}

	var s Selector
	copy(s[:], crypto.Keccak256([]byte(signature))[:SelectorLength])

	return s, nil
}

func MustNewSelector(signature string) Selector {
	s, err := NewSelector(signature)
	if err != nil {
		panic(err)
	}

	return s
}

func SelectorFromBytes(b []byte) (Selector, error) {
	if len(b) != SelectorLength {
		return Selector{}, MalformedInputError.Newf("selector length=%d", len(b))
	}

	var s Selector
	copy(s[:], b)

	return s, nil
}

func (s Selector) Bytes() []byte {
	return s[:]
}

func (s Selector) Equal(b Selector) bool {
	return s == b
}

func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Selector) UnmarshalText(b []byte) error {
	d, err := hexutil.Decode(string(b))
	if err != nil {
		return MalformedInputError.Wrap(err)
	}

	p, err := SelectorFromBytes(d)
	if err != nil {
		return err
	}

	*s = p

	return nil
}
