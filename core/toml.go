package core

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// TOML is the second manifest format, styled after packwiz pack files:
// versions are stored in their string grammar and keys are kebab-case. The
// TOML library can't drive the tagged unions directly, so the pack is
// converted to a flat wire representation before encoding and back after
// decoding.

type packToml struct {
	Metadata metadataToml      `toml:"metadata"`
	Versions versionsToml      `toml:"versions"`
	Files    []managedFileWire `toml:"files,omitempty"`
}

type metadataToml struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Author      string `toml:"author"`
	Version     string `toml:"version"`
}

type versionsToml struct {
	Minecraft     Minecraft `toml:"minecraft"`
	Loader        string    `toml:"loader"`
	LoaderVersion string    `toml:"loader-version"`
}

func (p Pack) tomlRep() (packToml, error) {
	rep := packToml{
		Metadata: metadataToml{
			Name:        p.Metadata.Name,
			Description: p.Metadata.Description,
			Author:      p.Metadata.Author,
			Version:     p.Metadata.Version.String(),
		},
		Versions: versionsToml{
			Minecraft:     p.Versions.Minecraft,
			Loader:        p.Versions.Loader.Name(),
			LoaderVersion: p.Versions.Loader.Version().String(),
		},
	}
	for _, file := range p.ManagedFiles.List() {
		wire, err := file.wire()
		if err != nil {
			return packToml{}, err
		}
		rep.Files = append(rep.Files, wire)
	}
	return rep, nil
}

func (rep packToml) toPack() (Pack, error) {
	version, err := semver.StrictNewVersion(rep.Metadata.Version)
	if err != nil {
		return Pack{}, fmt.Errorf("pack version: %w", err)
	}
	loaderVersion, err := semver.StrictNewVersion(rep.Versions.LoaderVersion)
	if err != nil {
		return Pack{}, fmt.Errorf("loader version: %w", err)
	}
	var loader Loader
	switch rep.Versions.Loader {
	case loaderNameQuilt:
		loader = NewQuilt(*loaderVersion)
	case loaderNameFabric:
		loader = NewFabric(*loaderVersion)
	case loaderNameForge:
		loader = NewForge(*loaderVersion)
	default:
		return Pack{}, fmt.Errorf("unknown loader %q", rep.Versions.Loader)
	}
	pack := Pack{
		Metadata: Metadata{
			Name:        rep.Metadata.Name,
			Description: rep.Metadata.Description,
			Author:      rep.Metadata.Author,
			Version:     *version,
		},
		Versions: Versions{
			Minecraft: rep.Versions.Minecraft,
			Loader:    loader,
		},
	}
	for _, wire := range rep.Files {
		file, err := wire.file()
		if err != nil {
			return Pack{}, err
		}
		pack.ManagedFiles.Add(file)
	}
	return pack, nil
}

// EncodeTOML writes the pack as a packwiz-style TOML document, with the file
// list in ascending path order.
func (p Pack) EncodeTOML(w io.Writer) error {
	rep, err := p.tomlRep()
	if err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(rep)
}

// DecodeTOMLPack reads a pack from its TOML form, deduplicating files by
// path with later entries winning.
func DecodeTOMLPack(r io.Reader) (Pack, error) {
	var rep packToml
	if _, err := toml.NewDecoder(r).Decode(&rep); err != nil {
		return Pack{}, err
	}
	return rep.toPack()
}
