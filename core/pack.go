package core

import (
	"github.com/Masterminds/semver/v3"
)

// Metadata is the pack-level descriptive information.
type Metadata struct {
	// Name of the mod pack
	Name string `json:"name"`
	// Description of the mod pack, empty if unset (omitted on the wire)
	Description string `json:"description,omitempty"`
	// Author of the pack
	Author string `json:"author"`
	// Version of the pack itself
	Version semver.Version `json:"version"`
}

// DefaultMetadata returns the placeholder metadata used when scaffolding a
// new pack.
func DefaultMetadata() Metadata {
	return Metadata{
		Name:        "My super cool modpack!",
		Description: "Totally a real mod pack!",
		Author:      "Your name here!",
		Version:     *semver.MustParse("0.0.1"),
	}
}

// Versions describes what the pack is compatible with: the Minecraft version
// and the loader that runs it.
type Versions struct {
	Minecraft Minecraft `json:"minecraft"`
	Loader    Loader    `json:"loader"`
}

// DefaultVersions returns the version pair used when scaffolding a new pack.
func DefaultVersions() Versions {
	return Versions{
		Minecraft: DefaultMinecraft(),
		Loader:    DefaultLoader(),
	}
}

// Pack is the manifest for a whole modpack: its metadata, the game and
// loader versions it targets, and the files it manages.
//
// A Pack performs no validation of its own; each field type enforces its own
// invariants at parse or decode time. Serialization is deterministic, so two
// packs with the same contents produce byte-identical manifests.
type Pack struct {
	Metadata Metadata `json:"metadata"`
	Versions Versions `json:"versions"`
	// ManagedFiles is serialized as an array in ascending path order
	ManagedFiles ManagedFiles `json:"managed_files"`
}

// DefaultPack returns a pack filled with placeholder values, used to
// scaffold a fresh manifest for the user to edit.
func DefaultPack() Pack {
	return Pack{
		Metadata:     DefaultMetadata(),
		Versions:     DefaultVersions(),
		ManagedFiles: NewManagedFiles(DefaultManagedFile()),
	}
}
