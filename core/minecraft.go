package core

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	log "github.com/sirupsen/logrus"
)

// The two version grammars. Compiled once at package initialisation;
// regexp2.Regexp values are safe for concurrent use.
var (
	// Release versions look like "x.y" or "x.y.z"
	releaseRegex = regexp2.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?$`, 0)
	// Snapshot versions look like "18w10d" (year, week, letter specifier)
	snapshotRegex = regexp2.MustCompile(`^(\d+)w(\d+)(\w+)$`, 0)
)

type minecraftKind uint8

// Ordinals double as the cross-kind ordering priority: every release sorts
// before every snapshot, regardless of the numeric fields. Snapshots are
// always treated as newer.
const (
	kindRelease minecraftKind = iota + 1
	kindSnapshot
)

// Minecraft is a parsed Minecraft version, either a release ("1.18.2") or a
// snapshot ("18w10d"). The zero value is not a valid version; construct one
// with ParseMinecraft, NewRelease, NewReleasePatch or NewSnapshot.
//
// Values are comparable with ==; comparison is structural. A release with no
// patch component is distinct from (and orders before) the same version with
// an explicit patch of 0.
type Minecraft struct {
	kind minecraftKind

	// Release fields
	major    uint16
	minor    uint16
	patch    uint16
	hasPatch bool

	// Snapshot fields. The specifier is kept as a string in case Mojang ever
	// ships a double letter snapshot.
	year      uint16
	week      uint16
	specifier string
}

// NewRelease creates a release version with no patch component ("1.19").
func NewRelease(major, minor uint16) Minecraft {
	return Minecraft{kind: kindRelease, major: major, minor: minor}
}

// NewReleasePatch creates a release version with an explicit patch component ("1.18.2").
func NewReleasePatch(major, minor, patch uint16) Minecraft {
	return Minecraft{kind: kindRelease, major: major, minor: minor, patch: patch, hasPatch: true}
}

// NewSnapshot creates a snapshot version ("18w10d").
func NewSnapshot(year, week uint16, specifier string) Minecraft {
	return Minecraft{kind: kindSnapshot, year: year, week: week, specifier: specifier}
}

// DefaultMinecraft returns the version used when scaffolding a new pack.
func DefaultMinecraft() Minecraft {
	return NewRelease(1, 19)
}

// ParseMinecraft parses a version string, trying the release grammar first
// and the snapshot grammar second. Inputs matching neither fail with a
// *NoSupportedPatternError; numeric components outside the 16-bit range fail
// with a *InvalidComponentError.
func ParseMinecraft(raw string) (Minecraft, error) {
	log.WithField("raw", raw).Debug("parsing minecraft version")
	if m, err := releaseRegex.FindStringMatch(raw); err == nil && m != nil {
		log.Trace("parsing a release version")
		major, err := parseComponent(m.GroupByNumber(1).String())
		if err != nil {
			return Minecraft{}, err
		}
		minor, err := parseComponent(m.GroupByNumber(2).String())
		if err != nil {
			return Minecraft{}, err
		}
		if g := m.GroupByNumber(3); len(g.Captures) > 0 {
			patch, err := parseComponent(g.String())
			if err != nil {
				return Minecraft{}, err
			}
			return NewReleasePatch(major, minor, patch), nil
		}
		return NewRelease(major, minor), nil
	}
	if m, err := snapshotRegex.FindStringMatch(raw); err == nil && m != nil {
		log.Trace("parsing a snapshot version")
		year, err := parseComponent(m.GroupByNumber(1).String())
		if err != nil {
			return Minecraft{}, err
		}
		week, err := parseComponent(m.GroupByNumber(2).String())
		if err != nil {
			return Minecraft{}, err
		}
		return NewSnapshot(year, week, m.GroupByNumber(3).String()), nil
	}
	return Minecraft{}, &NoSupportedPatternError{Version: raw}
}

func parseComponent(raw string) (uint16, error) {
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, &InvalidComponentError{Err: err}
	}
	return uint16(n), nil
}

// IsRelease reports whether this is a release version.
func (m Minecraft) IsRelease() bool { return m.kind == kindRelease }

// IsSnapshot reports whether this is a snapshot version.
func (m Minecraft) IsSnapshot() bool { return m.kind == kindSnapshot }

// Major returns the major component of a release version (0 for snapshots).
func (m Minecraft) Major() uint16 { return m.major }

// Minor returns the minor component of a release version (0 for snapshots).
func (m Minecraft) Minor() uint16 { return m.minor }

// Patch returns the patch component of a release version, and whether one was
// specified at all.
func (m Minecraft) Patch() (uint16, bool) { return m.patch, m.hasPatch }

// Year returns the year component of a snapshot version (0 for releases).
func (m Minecraft) Year() uint16 { return m.year }

// Week returns the week component of a snapshot version (0 for releases).
func (m Minecraft) Week() uint16 { return m.week }

// Specifier returns the letter specifier of a snapshot version ("" for releases).
func (m Minecraft) Specifier() string { return m.specifier }

// Compare returns -1, 0 or 1 as m orders before, equal to or after other.
// Releases always order before snapshots. Releases compare major, minor then
// patch, with a missing patch ordering before patch 0; snapshots compare
// year, week then specifier (lexicographic).
func (m Minecraft) Compare(other Minecraft) int {
	if c := cmp.Compare(m.kind, other.kind); c != 0 {
		return c
	}
	switch m.kind {
	case kindRelease:
		if c := cmp.Compare(m.major, other.major); c != 0 {
			return c
		}
		if c := cmp.Compare(m.minor, other.minor); c != 0 {
			return c
		}
		switch {
		case m.hasPatch == other.hasPatch:
			if !m.hasPatch {
				return 0
			}
			return cmp.Compare(m.patch, other.patch)
		case m.hasPatch:
			return 1
		default:
			return -1
		}
	case kindSnapshot:
		if c := cmp.Compare(m.year, other.year); c != 0 {
			return c
		}
		if c := cmp.Compare(m.week, other.week); c != 0 {
			return c
		}
		return strings.Compare(m.specifier, other.specifier)
	}
	// The kinds compared equal above, so both values carry an invalid kind;
	// that can only happen when the ordering logic itself is broken.
	panic("core: Minecraft value with invalid kind")
}

// String renders the version back into its grammar; ParseMinecraft(m.String())
// round-trips exactly.
func (m Minecraft) String() string {
	switch m.kind {
	case kindSnapshot:
		return fmt.Sprintf("%dw%d%s", m.year, m.week, m.specifier)
	default:
		if m.hasPatch {
			return fmt.Sprintf("%d.%d.%d", m.major, m.minor, m.patch)
		}
		return fmt.Sprintf("%d.%d", m.major, m.minor)
	}
}

// Shadow structs for the tagged wire form.
type releaseWire struct {
	Type  string  `json:"type"`
	Major uint16  `json:"major"`
	Minor uint16  `json:"minor"`
	Patch *uint16 `json:"patch,omitempty"`
}

type snapshotWire struct {
	Type      string `json:"type"`
	Year      uint16 `json:"year"`
	Week      uint16 `json:"week"`
	Specifier string `json:"specifier"`
}

const (
	tagRelease  = "Release"
	tagSnapshot = "Snapshot"
)

// MarshalJSON encodes the version as an object tagged on a "type" field, with
// the patch key omitted entirely when no patch component was specified.
func (m Minecraft) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case kindRelease:
		wire := releaseWire{Type: tagRelease, Major: m.major, Minor: m.minor}
		if m.hasPatch {
			patch := m.patch
			wire.Patch = &patch
		}
		return json.Marshal(wire)
	case kindSnapshot:
		return json.Marshal(snapshotWire{Type: tagSnapshot, Year: m.year, Week: m.week, Specifier: m.specifier})
	}
	return nil, errors.New("cannot encode an unset Minecraft version")
}

// UnmarshalJSON decodes the tagged wire form.
func (m *Minecraft) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	switch tag.Type {
	case tagRelease:
		var wire releaseWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return err
		}
		if wire.Patch != nil {
			*m = NewReleasePatch(wire.Major, wire.Minor, *wire.Patch)
		} else {
			*m = NewRelease(wire.Major, wire.Minor)
		}
		return nil
	case tagSnapshot:
		var wire snapshotWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return err
		}
		*m = NewSnapshot(wire.Year, wire.Week, wire.Specifier)
		return nil
	}
	return fmt.Errorf("unknown minecraft version type %q", tag.Type)
}

// MarshalText renders the version string grammar, for formats that store
// versions as plain strings (the TOML representation does).
func (m Minecraft) MarshalText() ([]byte, error) {
	if m.kind == 0 {
		return nil, errors.New("cannot encode an unset Minecraft version")
	}
	return []byte(m.String()), nil
}

// UnmarshalText parses the version string grammar.
func (m *Minecraft) UnmarshalText(text []byte) error {
	parsed, err := ParseMinecraft(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// NoSupportedPatternError is returned when a version string matches neither
// the release nor the snapshot grammar.
type NoSupportedPatternError struct {
	// Version is the offending input, unmodified.
	Version string
}

func (e *NoSupportedPatternError) Error() string {
	return fmt.Sprintf("version did not match any supported pattern: %s", e.Version)
}

// InvalidComponentError is returned when a numeric version component fails to
// parse as a 16-bit unsigned integer despite matching the grammar shape.
type InvalidComponentError struct {
	// Err is the underlying integer parse failure.
	Err error
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("invalid version component: %v", e.Err)
}

func (e *InvalidComponentError) Unwrap() error { return e.Err }
