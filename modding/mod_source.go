// Package modding identifies externally loaded mods.
package modding

import (
	"errors"
	"fmt"
	"hash/maphash"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var ErrEmptySourceName = errors.New("mod source name must not be empty")

// ModVersion is a semantic version of a mod
type ModVersion struct {
	v *semver.Version
}

func ParseModVersion(s string) (ModVersion, error) {

	v, err := semver.NewVersion(s)
	if err != nil {
		return ModVersion{}, fmt.Errorf("invalid mod version '%s': %w", s, err)
	}

	return ModVersion{v: v}, nil
}

// MustParseModVersion is ParseModVersion that panics on error, for versions known at compile time
func MustParseModVersion(s string) ModVersion {

	v, err := ParseModVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

func (v ModVersion) IsZero() bool {
	return v.v == nil
}

func (v ModVersion) Compare(other ModVersion) int {

	switch {
	case v.v == nil && other.v == nil:
		return 0
	case v.v == nil:
		return -1
	case other.v == nil:
		return 1
	}

	return v.v.Compare(other.v)
}

func (v ModVersion) String() string {

	if v.v == nil {
		return "0.0.0"
	}

	return v.v.String()
}

// ModSource identifies a loaded mod by name.
//
// Equality, ordering and hashing only look at Source, never at Version: a mod can only be
// loaded once, so two sources with the same name but different versions are the same source.
// It is kept this way on purpose even though it means a version upgrade is not a new source.
//
// ModSource can't be compared with == or used as a map key, since the built-in equality would
// look at the version. Use Equal, and Key for maps.
type ModSource struct {
	_       [0]func()
	source  string
	version ModVersion
}

// NewModSource makes a source from the canonical module name, which is what identifies it
func NewModSource(name string, version ModVersion) (ModSource, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return ModSource{}, ErrEmptySourceName
	}

	return ModSource{source: name, version: version}, nil
}

func (s ModSource) Source() string {
	return s.source
}

func (s ModSource) Version() ModVersion {
	return s.version
}

// Key is the value to use when keying maps by source
func (s ModSource) Key() string {
	return s.source
}

func (s ModSource) String() string {
	return fmt.Sprintf("Source: %s, Version: %s", s.source, s.version)
}

// Equal reports whether a and b name the same source. Versions are ignored.
func Equal(a, b ModSource) bool {
	return a.source == b.source
}

// Compare orders sources by name only
func Compare(a, b ModSource) int {
	return strings.Compare(a.source, b.source)
}

var hashSeed = maphash.MakeSeed()

// Hash hashes the source name only, so Equal sources always hash the same within a process
func Hash(s ModSource) uint64 {
	return maphash.String(hashSeed, s.source)
}
