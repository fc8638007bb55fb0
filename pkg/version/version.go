// Package version provides protocol version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the exposition protocol version implemented by this module.
const Current = "0.1"

// Git is the build's source revision, set with
// -ldflags "-X github.com/noos-go/iio-demo/pkg/version.Git=<rev>".
var Git = ""

// ProtocolVersion represents a parsed "major.minor" protocol version.
type ProtocolVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string. Anything after the first
// space (a git revision) is ignored.
func Parse(s string) (ProtocolVersion, error) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return ProtocolVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return ProtocolVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return ProtocolVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}
	return ProtocolVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MustCurrent returns the parsed Current version.
func MustCurrent() ProtocolVersion {
	v, err := Parse(Current)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as "major.minor".
func (v ProtocolVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if other can talk to v. Before 1.0 every minor
// release may break the wire format, so minors must match too.
func (v ProtocolVersion) Compatible(other ProtocolVersion) bool {
	if v.Major != other.Major {
		return false
	}
	return v.Major > 0 || v.Minor == other.Minor
}
