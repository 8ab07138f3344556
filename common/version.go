package common

import (
	"encoding/json"

	"github.com/Masterminds/semver"
)

var ZeroVersion Version = Version{}

type Version semver.Version

func ParseVersion(s string) (Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, InvalidVersionError.Wrap(err).Newf("version=%q", s)
	}

	return Version(*v), nil
}

func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Version) semver() *semver.Version {
	p := semver.Version(v)
	return &p
}

func (v Version) String() string {
	return v.semver().String()
}

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Version) UnmarshalJSON(b []byte) error {
	var n string
	if err := json.Unmarshal(b, &n); err != nil {
		return JSONUnmarshalError.Wrap(err)
	}

	p, err := ParseVersion(n)
	if err != nil {
		return err
	}

	*v = p

	return nil
}

func (v Version) Equal(b Version) bool {
	return v.semver().Equal(b.semver())
}

// Compatible reports whether b can be served by v; major versions must
// match and b must not be newer than v.
func (v Version) Compatible(b Version) bool {
	if v.semver().Major() != b.semver().Major() {
		return false
	}

	return !b.semver().GreaterThan(v.semver())
}
