package core

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Source is where a managed file comes from. It is a closed union: the only
// implementations are UrlSource, PathSource, GitSource, SlugSource,
// SlugReleasesSource, ModrinthSource and CurseforgeSource, in that order for
// sorting purposes.
//
// A Source is pure data. Fetching the file, resolving slugs against remote
// APIs and verifying digests all belong to the installer; the core only
// guarantees lossless storage and exact round-trip serialization.
type Source interface {
	// sourceOrdinal seals the interface and fixes the cross-variant sort order.
	sourceOrdinal() int
}

// UrlSource is a raw URL with no version tracking, pinned by digest.
type UrlSource struct {
	// URL the file is downloaded from
	URL string `json:"url" toml:"url"`
	// Blake3 digest of the file contents
	Blake3 Blake3Sum `json:"blake3" toml:"blake3"`
}

// PathSource is a file in the repository, relative to the directory the
// manifest lives in.
type PathSource struct {
	// Path in forward-slash format
	Path string `json:"path" toml:"path"`
	// Blake3 digest of the file contents
	Blake3 Blake3Sum `json:"blake3" toml:"blake3"`
}

// GitSource is a git repository. There is no digest; the content is whatever
// HEAD of the branch points at.
type GitSource struct {
	URL string `json:"url" toml:"url"`
	// Branch to work off of, empty for the default branch
	Branch string `json:"branch,omitempty" toml:"branch,omitempty"`
}

// SlugSource is a repository on a supported forge, referenced by slug
// ("github:username/project", "gitlab:username/project", ...).
type SlugSource struct {
	Slug string `json:"slug" toml:"slug"`
	// Branch to work off of, empty for the default branch
	Branch string `json:"branch,omitempty" toml:"branch,omitempty"`
}

// SlugReleasesSource is a forge slug resolved through its releases page
// rather than the repository itself. The artifact regex must match exactly
// one artifact in a release; the installer uses the latest release with a
// matching artifact. The release regex optionally narrows which releases are
// considered.
type SlugReleasesSource struct {
	Slug          string `json:"slug" toml:"slug"`
	ArtifactRegex string `json:"artifact_regex" toml:"artifact-regex"`
	ReleaseRegex  string `json:"release_regex,omitempty" toml:"release-regex,omitempty"`
}

// ModrinthSource is a mod hosted on Modrinth.
type ModrinthSource struct {
	Slug string `json:"slug" toml:"slug"`
}

// CurseforgeSource is a mod hosted on Curseforge.
type CurseforgeSource struct {
	Slug string `json:"slug" toml:"slug"`
}

func (UrlSource) sourceOrdinal() int          { return 0 }
func (PathSource) sourceOrdinal() int         { return 1 }
func (GitSource) sourceOrdinal() int          { return 2 }
func (SlugSource) sourceOrdinal() int         { return 3 }
func (SlugReleasesSource) sourceOrdinal() int { return 4 }
func (ModrinthSource) sourceOrdinal() int     { return 5 }
func (CurseforgeSource) sourceOrdinal() int   { return 6 }

// DefaultSource returns the sample source used when scaffolding a new pack.
func DefaultSource() Source {
	return UrlSource{URL: "https://example.org/mods/MyAwesomeMod-1.2.3.jar"}
}

// CompareSources orders two sources: variant declaration order first
// (Url < Path < Git < Slug < SlugReleases < Modrinth < Curseforge), then
// field-by-field within a variant. An empty optional field (branch, release
// regex) sorts before any non-empty value.
func CompareSources(a, b Source) int {
	if c := cmp.Compare(a.sourceOrdinal(), b.sourceOrdinal()); c != 0 {
		return c
	}
	switch a := a.(type) {
	case UrlSource:
		b := b.(UrlSource)
		if c := strings.Compare(a.URL, b.URL); c != 0 {
			return c
		}
		return bytes.Compare(a.Blake3[:], b.Blake3[:])
	case PathSource:
		b := b.(PathSource)
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return bytes.Compare(a.Blake3[:], b.Blake3[:])
	case GitSource:
		b := b.(GitSource)
		if c := strings.Compare(a.URL, b.URL); c != 0 {
			return c
		}
		return strings.Compare(a.Branch, b.Branch)
	case SlugSource:
		b := b.(SlugSource)
		if c := strings.Compare(a.Slug, b.Slug); c != 0 {
			return c
		}
		return strings.Compare(a.Branch, b.Branch)
	case SlugReleasesSource:
		b := b.(SlugReleasesSource)
		if c := strings.Compare(a.Slug, b.Slug); c != 0 {
			return c
		}
		if c := strings.Compare(a.ArtifactRegex, b.ArtifactRegex); c != 0 {
			return c
		}
		return strings.Compare(a.ReleaseRegex, b.ReleaseRegex)
	case ModrinthSource:
		return strings.Compare(a.Slug, b.(ModrinthSource).Slug)
	case CurseforgeSource:
		return strings.Compare(a.Slug, b.(CurseforgeSource).Slug)
	}
	// Ordinals compared equal above, so a and b are the same variant; reaching
	// here means a variant is missing from the switch.
	panic("core: unknown Source variant")
}

// sourceEnvelope is the externally tagged wire form: one key per object,
// named for the variant, with that variant's fields nested.
type sourceEnvelope struct {
	Url          *UrlSource          `json:"Url,omitempty" toml:"url,omitempty"`
	Path         *PathSource         `json:"Path,omitempty" toml:"path,omitempty"`
	Git          *GitSource          `json:"Git,omitempty" toml:"git,omitempty"`
	Slug         *SlugSource         `json:"Slug,omitempty" toml:"slug,omitempty"`
	SlugReleases *SlugReleasesSource `json:"SlugReleases,omitempty" toml:"slug-releases,omitempty"`
	Modrinth     *ModrinthSource     `json:"Modrinth,omitempty" toml:"modrinth,omitempty"`
	Curseforge   *CurseforgeSource   `json:"Curseforge,omitempty" toml:"curseforge,omitempty"`
}

func envelopeSource(s Source) (sourceEnvelope, error) {
	var env sourceEnvelope
	switch s := s.(type) {
	case UrlSource:
		env.Url = &s
	case PathSource:
		env.Path = &s
	case GitSource:
		env.Git = &s
	case SlugSource:
		env.Slug = &s
	case SlugReleasesSource:
		env.SlugReleases = &s
	case ModrinthSource:
		env.Modrinth = &s
	case CurseforgeSource:
		env.Curseforge = &s
	case nil:
		return env, errors.New("managed file has no source")
	default:
		return env, fmt.Errorf("unknown Source variant %T", s)
	}
	return env, nil
}

func (env sourceEnvelope) source() (Source, error) {
	var found Source
	count := 0
	if env.Url != nil {
		found, count = *env.Url, count+1
	}
	if env.Path != nil {
		found, count = *env.Path, count+1
	}
	if env.Git != nil {
		found, count = *env.Git, count+1
	}
	if env.Slug != nil {
		found, count = *env.Slug, count+1
	}
	if env.SlugReleases != nil {
		found, count = *env.SlugReleases, count+1
	}
	if env.Modrinth != nil {
		found, count = *env.Modrinth, count+1
	}
	if env.Curseforge != nil {
		found, count = *env.Curseforge, count+1
	}
	if count != 1 {
		return nil, fmt.Errorf("source must have exactly one variant, got %d", count)
	}
	return found, nil
}

// MarshalSource encodes a source in its externally tagged wire form.
func MarshalSource(s Source) ([]byte, error) {
	env, err := envelopeSource(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// UnmarshalSource decodes an externally tagged source object.
func UnmarshalSource(data []byte) (Source, error) {
	var env sourceEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env.source()
}
