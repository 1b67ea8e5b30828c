package core

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestManagedFilesDedupByPath(t *testing.T) {
	first := ManagedFile{
		Filename: "OldName.jar",
		Path:     "mods/Shared.jar",
		Side:     UniversalSide,
		Source:   ModrinthSource{Slug: "old"},
	}
	second := ManagedFile{
		Filename: "NewName.jar",
		Path:     "mods/Shared.jar",
		Side:     UniversalSide,
		Source:   ModrinthSource{Slug: "new"},
	}

	files := NewManagedFiles(first, second)
	if files.Len() != 1 {
		t.Fatalf("two files with the same path should collapse to one, got %d", files.Len())
	}
	// Last write wins
	kept, ok := files.Get("mods/Shared.jar")
	if !ok {
		t.Fatal("file missing from collection")
	}
	if kept.Filename != "NewName.jar" {
		t.Errorf("expected the later entry to win, kept %q", kept.Filename)
	}
}

func TestManagedFilesSortedByPath(t *testing.T) {
	var files ManagedFiles
	for _, path := range []string{"mods/c.jar", "mods/a.jar", "mods/b.jar"} {
		files.Add(ManagedFile{Filename: "x.jar", Path: path, Side: UniversalSide, Source: ModrinthSource{Slug: "x"}})
	}

	var paths []string
	for _, file := range files.List() {
		paths = append(paths, file.Path)
	}
	want := []string{"mods/a.jar", "mods/b.jar", "mods/c.jar"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("List() order %v, want %v", paths, want)
	}

	out, err := json.Marshal(files)
	if err != nil {
		t.Fatal(err)
	}
	if a, b := strings.Index(string(out), "mods/a.jar"), strings.Index(string(out), "mods/b.jar"); a > b {
		t.Errorf("wire output should be in ascending path order, got %s", out)
	}
}

func TestManagedFilesRemove(t *testing.T) {
	files := NewManagedFiles(DefaultManagedFile())
	if !files.Remove("mods/MyAwesomeMod.jar") {
		t.Error("expected Remove to report the file as present")
	}
	if files.Remove("mods/MyAwesomeMod.jar") {
		t.Error("expected a second Remove to report the file as absent")
	}
	if files.Len() != 0 {
		t.Errorf("collection should be empty, has %d entries", files.Len())
	}
}

// name and description are omitted entirely when unset, never null.
func TestManagedFileOptionalFieldOmission(t *testing.T) {
	file := ManagedFile{
		Filename: "Plain.jar",
		Path:     "mods/Plain.jar",
		Source:   ModrinthSource{Slug: "plain"},
	}
	out, err := json.Marshal(file)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"name", "description"} {
		if strings.Contains(string(out), `"`+key+`"`) {
			t.Errorf("output should not contain a %s key at all, got %s", key, out)
		}
	}
	if strings.Contains(string(out), "null") {
		t.Errorf("output should not contain nulls, got %s", out)
	}
}

func TestManagedFileSideDefaultsToBoth(t *testing.T) {
	doc := `{"filename":"Plain.jar","devel":false,"path":"mods/Plain.jar","source":{"Modrinth":{"slug":"plain"}}}`
	var file ManagedFile
	if err := json.Unmarshal([]byte(doc), &file); err != nil {
		t.Fatal(err)
	}
	if file.Side != UniversalSide {
		t.Errorf("omitted side should default to Both, got %q", file.Side)
	}

	bad := `{"filename":"Plain.jar","devel":false,"path":"mods/Plain.jar","side":"Everywhere","source":{"Modrinth":{"slug":"plain"}}}`
	if err := json.Unmarshal([]byte(bad), &file); err == nil {
		t.Error("expected an unknown side to fail decoding")
	}
}

func TestManagedFileRoundTrip(t *testing.T) {
	file := ManagedFile{
		Name:        "Custom Tweaks",
		Description: "Pack specific tweaks",
		Filename:    "CustomTweaks.jar",
		Devel:       true,
		Path:        "mods/CustomTweaks.jar",
		Side:        ClientSide,
		Source:      GitSource{URL: "https://github.com/example/tweaks.git", Branch: "main"},
	}
	out, err := json.Marshal(file)
	if err != nil {
		t.Fatal(err)
	}
	var back ManagedFile
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back != file {
		t.Errorf("round trip gave %#v, want %#v", back, file)
	}
}
