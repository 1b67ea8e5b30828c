package core

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Side is the side a managed file is needed on.
type Side string

// The three possible values of Side. A file needed everywhere is universal.
const (
	ClientSide    Side = "Client"
	ServerSide    Side = "Server"
	UniversalSide Side = "Both"
)

// MarshalText encodes the side, defaulting an unset value to "Both".
func (s Side) MarshalText() ([]byte, error) {
	if s == "" {
		return []byte(UniversalSide), nil
	}
	switch s {
	case ClientSide, ServerSide, UniversalSide:
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown side %q", string(s))
}

// UnmarshalText decodes a side, rejecting anything outside the closed set.
func (s *Side) UnmarshalText(text []byte) error {
	switch side := Side(text); side {
	case ClientSide, ServerSide, UniversalSide:
		*s = side
		return nil
	default:
		return fmt.Errorf("unknown side %q", string(text))
	}
}

// ManagedFile is one installable artifact in the pack.
//
// Identity within a pack is the install path alone: two managed files with
// the same Path are the same slot no matter what the other fields say.
type ManagedFile struct {
	// Name of the mod/file, empty if unset
	Name string
	// Description of the mod, empty if unset
	Description string
	// Filename to download
	Filename string
	// Devel marks files only installed in the development profile of the pack
	Devel bool
	// Path to install to, in forward-slash format relative to the game directory
	Path string
	// Side the file is needed on; an empty value means both
	Side Side
	// Source the file is fetched from
	Source Source
}

// DefaultManagedFile returns the sample file used when scaffolding a new pack.
func DefaultManagedFile() ManagedFile {
	return ManagedFile{
		Name:        "My totally awesome mode",
		Description: "It makes trees blue",
		Filename:    "My Awesome Mod.jar",
		Devel:       true,
		Path:        "mods/MyAwesomeMod.jar",
		Side:        UniversalSide,
		Source:      DefaultSource(),
	}
}

// Compare orders managed files by install path and nothing else.
func (f ManagedFile) Compare(other ManagedFile) int {
	return strings.Compare(f.Path, other.Path)
}

// managedFileWire is the wire form shared by the JSON and TOML codecs. Name
// and description are omitted entirely when empty, never emitted as null.
type managedFileWire struct {
	Name        string         `json:"name,omitempty" toml:"name,omitempty"`
	Description string         `json:"description,omitempty" toml:"description,omitempty"`
	Filename    string         `json:"filename" toml:"filename"`
	Devel       bool           `json:"devel" toml:"devel"`
	Path        string         `json:"path" toml:"path"`
	Side        Side           `json:"side" toml:"side"`
	Source      sourceEnvelope `json:"source" toml:"source"`
}

func (f ManagedFile) wire() (managedFileWire, error) {
	env, err := envelopeSource(f.Source)
	if err != nil {
		return managedFileWire{}, fmt.Errorf("file %q: %w", f.Path, err)
	}
	side := f.Side
	if side == "" {
		side = UniversalSide
	}
	return managedFileWire{
		Name:        f.Name,
		Description: f.Description,
		Filename:    f.Filename,
		Devel:       f.Devel,
		Path:        f.Path,
		Side:        side,
		Source:      env,
	}, nil
}

func (w managedFileWire) file() (ManagedFile, error) {
	source, err := w.Source.source()
	if err != nil {
		return ManagedFile{}, fmt.Errorf("file %q: %w", w.Path, err)
	}
	side := w.Side
	if side == "" {
		side = UniversalSide
	}
	return ManagedFile{
		Name:        w.Name,
		Description: w.Description,
		Filename:    w.Filename,
		Devel:       w.Devel,
		Path:        w.Path,
		Side:        side,
		Source:      source,
	}, nil
}

// MarshalJSON encodes the file with its source in externally tagged form.
func (f ManagedFile) MarshalJSON() ([]byte, error) {
	wire, err := f.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a managed file, defaulting an omitted side to "Both".
func (f *ManagedFile) UnmarshalJSON(data []byte) error {
	var wire managedFileWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	file, err := wire.file()
	if err != nil {
		return err
	}
	*f = file
	return nil
}

// ManagedFiles is the pack's file collection: a set keyed by install path,
// iterated and serialized in ascending path order. Inserting a file whose
// path is already present replaces the existing entry (last write wins).
//
// The in-memory representation is a path-keyed map; the ordered wire
// representation is produced on demand. The zero value is an empty,
// ready-to-use collection. Copies share the underlying map.
type ManagedFiles struct {
	byPath map[string]ManagedFile
}

// NewManagedFiles builds a collection from the given files, deduplicating by
// path with later entries winning.
func NewManagedFiles(files ...ManagedFile) ManagedFiles {
	var f ManagedFiles
	for _, file := range files {
		f.Add(file)
	}
	return f
}

// Add inserts a file, replacing any existing entry with the same path.
func (f *ManagedFiles) Add(file ManagedFile) {
	if f.byPath == nil {
		f.byPath = make(map[string]ManagedFile)
	}
	f.byPath[file.Path] = file
}

// Get returns the file at the given install path, if present.
func (f ManagedFiles) Get(path string) (ManagedFile, bool) {
	file, ok := f.byPath[path]
	return file, ok
}

// Remove deletes the file at the given install path, reporting whether one
// was present.
func (f *ManagedFiles) Remove(path string) bool {
	if _, ok := f.byPath[path]; !ok {
		return false
	}
	delete(f.byPath, path)
	return true
}

// Len returns the number of files in the collection.
func (f ManagedFiles) Len() int { return len(f.byPath) }

// List returns the files in ascending path order.
func (f ManagedFiles) List() []ManagedFile {
	files := make([]ManagedFile, 0, len(f.byPath))
	for _, file := range f.byPath {
		files = append(files, file)
	}
	slices.SortFunc(files, ManagedFile.Compare)
	return files
}

// MarshalJSON encodes the collection as an array in ascending path order.
func (f ManagedFiles) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.List())
}

// UnmarshalJSON decodes an array of files, deduplicating by path with later
// entries winning.
func (f *ManagedFiles) UnmarshalJSON(data []byte) error {
	var files []ManagedFile
	if err := json.Unmarshal(data, &files); err != nil {
		return err
	}
	*f = NewManagedFiles(files...)
	return nil
}
