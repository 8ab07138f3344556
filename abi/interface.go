package abi

import (
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

// Interface is a parsed contract ABI document.
type Interface struct {
	parsed gethabi.ABI
}

func ParseInterface(raw string) (Interface, error) {
	parsed, err := gethabi.JSON(strings.NewReader(raw))
	if err != nil {
		return Interface{}, InvalidSignatureError.Wrap(err).Newf("failed to parse abi")
	}

	return Interface{parsed: parsed}, nil
}

func MustParseInterface(raw string) Interface {
	i, err := ParseInterface(raw)
	if err != nil {
		panic(err)
	}

	return i
}

func (i Interface) Method(name string) (gethabi.Method, error) {
	m, found := i.parsed.Methods[name]
	if !found {
		return gethabi.Method{}, UnknownSelectorError.Newf("method=%q", name)
	}

	return m, nil
}

func (i Interface) Selector(name string) (Selector, error) {
	m, err := i.Method(name)
	if err != nil {
		return Selector{}, err
	}

	return SelectorFromBytes(m.ID)
}

// Signature returns the canonical signature, like "getRandomNumber(uint256)".
func (i Interface) Signature(name string) (string, error) {
	m, err := i.Method(name)
	if err != nil {
		return "", err
	}

	return m.Sig, nil
}

func (i Interface) MethodBySelector(s Selector) (gethabi.Method, error) {
	m, err := i.parsed.MethodById(s[:])
	if err != nil {
		return gethabi.Method{}, UnknownSelectorError.Wrap(err).Newf("selector=%s", s)
	}

	return *m, nil
}

func (i Interface) PackCall(name string, args ...interface{}) ([]byte, error) {
	b, err := i.parsed.Pack(name, args...)
	if err != nil {
		return nil, MalformedInputError.Wrap(err).Newf("method=%q", name)
	}

	return b, nil
}

func (i Interface) UnpackOutput(name string, b []byte) ([]interface{}, error) {
	v, err := i.parsed.Unpack(name, b)
	if err != nil {
		return nil, MalformedInputError.Wrap(err).Newf("method=%q", name)
	}

	return v, nil
}
