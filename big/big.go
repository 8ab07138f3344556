package big

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

const WordLength = 32

var (
	ZeroU256 U256 = NewU256(0)
	MaxU256  U256 = U256{Int: *new(uint256.Int).SetAllOne()}
)

// U256 is an unsigned 256-bit integer. Every value has exactly one 32-byte
// big-endian representation.
type U256 struct {
	uint256.Int
}

func NewU256(i uint64) U256 {
	var a uint256.Int
	a.SetUint64(i)

	return U256{Int: a}
}

// ParseU256 accepts decimal or 0x-prefixed hex.
func ParseU256(s string) (U256, error) {
	if len(s) < 1 {
		return U256{}, InvalidU256StringError.Newf("empty string")
	}

	b, ok := math.ParseBig256(s)
	if !ok {
		return U256{}, InvalidU256StringError.Newf("string=%q", s)
	} else if b.Sign() < 0 {
		return U256{}, InvalidU256StringError.Newf("negative; string=%q", s)
	}

	return U256FromBig(b)
}

func MustParseU256(s string) U256 {
	a, err := ParseU256(s)
	if err != nil {
		panic(err)
	}

	return a
}

func U256FromBig(b *big.Int) (U256, error) {
	if b.Sign() < 0 {
		return U256{}, OverflowError.Newf("negative value; value=%s", b.String())
	}

	a, overflow := uint256.FromBig(b)
	if overflow {
		return U256{}, OverflowError.Newf("bit length=%d", b.BitLen())
	}

	return U256{Int: *a}, nil
}

func U256FromBytes32(b [WordLength]byte) U256 {
	var a uint256.Int
	a.SetBytes32(b[:])

	return U256{Int: a}
}

func (a U256) Bytes32() [WordLength]byte {
	return a.Int.Bytes32()
}

func (a U256) Big() *big.Int {
	return a.Int.ToBig()
}

func (a U256) String() string {
	return a.Int.Dec()
}

func (a U256) Hex() string {
	b := a.Bytes32()
	return hexutil.Encode(b[:])
}

func (a U256) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *U256) UnmarshalText(b []byte) error {
	p, err := ParseU256(string(b))
	if err != nil {
		return err
	}

	*a = p

	return nil
}

func (a U256) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *U256) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return InvalidU256StringError.Wrap(err)
	}

	return a.UnmarshalText([]byte(s))
}

func (a U256) IsZero() bool {
	return a.Int.IsZero()
}

func (a U256) Cmp(b U256) int {
	return a.Int.Cmp(&b.Int)
}

func (a U256) Equal(b U256) bool {
	return a.Int.Eq(&b.Int)
}

func (a U256) AddOK(n U256) (U256, bool) {
	var b uint256.Int
	if _, overflow := b.AddOverflow(&a.Int, &n.Int); overflow {
		return U256{}, false
	}

	return U256{Int: b}, true
}

func (a U256) SubOK(n U256) (U256, bool) {
	var b uint256.Int
	if _, underflow := b.SubOverflow(&a.Int, &n.Int); underflow {
		return U256{}, false
	}

	return U256{Int: b}, true
}

func (a U256) Inc() (U256, bool) {
	return a.AddOK(NewU256(1))
}

func (a U256) Uint64Ok() (uint64, bool) {
	return a.Int.Uint64(), a.Int.IsUint64()
}
