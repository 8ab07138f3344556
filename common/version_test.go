package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testVersion struct {
	suite.Suite
}

func (t *testVersion) TestEncodeDecode() {
	v, err := ParseVersion("0.1.2-proto+findme")
	t.NoError(err)

	b, err := json.Marshal(v)
	t.NoError(err)
	t.Equal(`"0.1.2-proto+findme"`, string(b))

	var nv Version
	t.NoError(json.Unmarshal(b, &nv))

	t.True(v.Equal(nv))
}

func (t *testVersion) TestInvalid() {
	_, err := ParseVersion("showme")
	t.True(xerrors.Is(err, InvalidVersionError))

	var nv Version
	err = json.Unmarshal([]byte(`"findme"`), &nv)
	t.True(xerrors.Is(err, InvalidVersionError))
}

func (t *testVersion) TestCompatible() {
	v := MustParseVersion("1.2.0")

	t.True(v.Compatible(MustParseVersion("1.0.0")))
	t.True(v.Compatible(MustParseVersion("1.2.0")))
	t.False(v.Compatible(MustParseVersion("1.3.0")))
	t.False(v.Compatible(MustParseVersion("2.0.0")))
	t.False(v.Compatible(MustParseVersion("0.9.0")))
}

func TestVersion(t *testing.T) {
	suite.Run(t, new(testVersion))
}
