package big

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testU256 struct {
	suite.Suite
}

func (t *testU256) TestParse() {
	cases := []struct {
		s        string
		expected string
	}{
		{"0", "0"},
		{"42", "42"},
		{"0x2a", "42"},
		{"340282366920938463463374607431768211455", "340282366920938463463374607431768211455"},
		{
			"0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		},
	}

	for _, c := range cases {
		a, err := ParseU256(c.s)
		t.NoError(err, c.s)
		t.Equal(c.expected, a.String(), c.s)
	}
}

func (t *testU256) TestParseInvalid() {
	for _, s := range []string{
		"",
		"showme",
		"-1",
		"0xfindme",
		"115792089237316195423570985008687907853269984665640564039457584007913129639936", // 2^256
	} {
		_, err := ParseU256(s)
		t.True(xerrors.Is(err, InvalidU256StringError), "%q: %v", s, err)
	}
}

func (t *testU256) TestMax() {
	t.Equal(
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		MaxU256.String(),
	)

	b := MaxU256.Bytes32()
	for _, c := range b {
		t.Equal(byte(0xff), c)
	}

	_, ok := MaxU256.Inc()
	t.False(ok)
}

func (t *testU256) TestFromBig() {
	{
		a, err := U256FromBig(big.NewInt(42))
		t.NoError(err)
		t.True(a.Equal(NewU256(42)))
	}

	{
		_, err := U256FromBig(big.NewInt(-1))
		t.True(xerrors.Is(err, OverflowError))
	}

	{
		over := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err := U256FromBig(over)
		t.True(xerrors.Is(err, OverflowError))
	}
}

func (t *testU256) TestBytes32() {
	a := NewU256(0x0102)
	b := a.Bytes32()

	for i := 0; i < WordLength-2; i++ {
		t.Equal(byte(0), b[i])
	}
	t.Equal(byte(0x01), b[30])
	t.Equal(byte(0x02), b[31])

	t.True(a.Equal(U256FromBytes32(b)))
	t.Equal("0x0000000000000000000000000000000000000000000000000000000000000102", a.Hex())
}

func (t *testU256) TestArithmetic() {
	a := NewU256(10)

	{
		b, ok := a.AddOK(NewU256(5))
		t.True(ok)
		t.Equal("15", b.String())
	}

	{
		_, ok := a.SubOK(NewU256(11))
		t.False(ok)

		b, ok := a.SubOK(NewU256(10))
		t.True(ok)
		t.True(b.IsZero())
	}

	t.Equal(-1, NewU256(1).Cmp(NewU256(2)))
	t.Equal(1, MaxU256.Cmp(ZeroU256))

	u, ok := NewU256(7).Uint64Ok()
	t.True(ok)
	t.Equal(uint64(7), u)

	_, ok = MaxU256.Uint64Ok()
	t.False(ok)
}

func (t *testU256) TestJSON() {
	a := MustParseU256("0x2a")

	b, err := json.Marshal(a)
	t.NoError(err)
	t.Equal(`"42"`, string(b))

	var ua U256
	t.NoError(json.Unmarshal(b, &ua))
	t.True(a.Equal(ua))

	t.NoError(json.Unmarshal([]byte(`"0xff"`), &ua))
	t.Equal("255", ua.String())

	err = json.Unmarshal([]byte(`42`), &ua)
	t.True(xerrors.Is(err, InvalidU256StringError))
}

func TestU256(t *testing.T) {
	suite.Run(t, new(testU256))
}
