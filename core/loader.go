package core

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

type loaderKind uint8

// Declaration order is the ordering priority for sorted collections of
// loaders: Quilt < Fabric < Forge.
const (
	kindQuilt loaderKind = iota + 1
	kindFabric
	kindForge
)

const (
	loaderNameQuilt  = "Quilt"
	loaderNameFabric = "Fabric"
	loaderNameForge  = "Forge"
)

// Loader is a mod loader paired with its semantic version. The zero value is
// not a valid loader; construct one with NewQuilt, NewFabric or NewForge.
type Loader struct {
	kind    loaderKind
	version semver.Version
}

// NewQuilt creates a Quilt loader at the given version.
func NewQuilt(version semver.Version) Loader {
	return Loader{kind: kindQuilt, version: version}
}

// NewFabric creates a Fabric loader at the given version.
func NewFabric(version semver.Version) Loader {
	return Loader{kind: kindFabric, version: version}
}

// NewForge creates a Forge loader at the given version.
func NewForge(version semver.Version) Loader {
	return Loader{kind: kindForge, version: version}
}

// DefaultLoader returns the loader used when scaffolding a new pack.
func DefaultLoader() Loader {
	return NewQuilt(*semver.MustParse("0.17.1-beta.3"))
}

// Name returns the display name of the loader kind.
func (l Loader) Name() string {
	switch l.kind {
	case kindQuilt:
		return loaderNameQuilt
	case kindFabric:
		return loaderNameFabric
	case kindForge:
		return loaderNameForge
	}
	return ""
}

// Version returns the loader version.
func (l Loader) Version() semver.Version { return l.version }

// Compare returns -1, 0 or 1 as l orders before, equal to or after other:
// kind in declaration order first, then version ascending.
func (l Loader) Compare(other Loader) int {
	if c := cmp.Compare(l.kind, other.kind); c != 0 {
		return c
	}
	return l.version.Compare(&other.version)
}

// Equal reports whether two loaders are the same kind at the same version.
// Prefer this over == since semver treats build metadata as insignificant.
func (l Loader) Equal(other Loader) bool {
	return l.kind == other.kind && l.version.Equal(&other.version)
}

func (l Loader) String() string {
	return fmt.Sprintf("%s: %s", l.Name(), l.version.String())
}

type loaderWire struct {
	Loader  string          `json:"loader"`
	Version *semver.Version `json:"version"`
}

// MarshalJSON encodes the loader tagged on a "loader" field with the version
// nested under "version".
func (l Loader) MarshalJSON() ([]byte, error) {
	name := l.Name()
	if name == "" {
		return nil, fmt.Errorf("cannot encode an unset Loader")
	}
	version := l.version
	return json.Marshal(loaderWire{Loader: name, Version: &version})
}

// UnmarshalJSON decodes the tagged wire form.
func (l *Loader) UnmarshalJSON(data []byte) error {
	var wire loaderWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Version == nil {
		return fmt.Errorf("loader %q is missing a version", wire.Loader)
	}
	switch wire.Loader {
	case loaderNameQuilt:
		*l = NewQuilt(*wire.Version)
	case loaderNameFabric:
		*l = NewFabric(*wire.Version)
	case loaderNameForge:
		*l = NewForge(*wire.Version)
	default:
		return fmt.Errorf("unknown loader %q", wire.Loader)
	}
	return nil
}
