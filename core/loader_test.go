package core

import (
	"encoding/json"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestLoaderNameAndDisplay(t *testing.T) {
	cases := []struct {
		loader  Loader
		name    string
		display string
	}{
		{NewQuilt(*semver.MustParse("0.17.1-beta.3")), "Quilt", "Quilt: 0.17.1-beta.3"},
		{NewFabric(*semver.MustParse("0.14.8")), "Fabric", "Fabric: 0.14.8"},
		{NewForge(*semver.MustParse("41.0.63")), "Forge", "Forge: 41.0.63"},
	}
	for _, c := range cases {
		if got := c.loader.Name(); got != c.name {
			t.Errorf("Name() = %q, want %q", got, c.name)
		}
		if got := c.loader.String(); got != c.display {
			t.Errorf("String() = %q, want %q", got, c.display)
		}
	}
}

// Kind in declaration order first (Quilt < Fabric < Forge), then version.
func TestLoaderOrder(t *testing.T) {
	ordered := []Loader{
		NewQuilt(*semver.MustParse("0.17.0")),
		NewQuilt(*semver.MustParse("0.17.1-beta.3")),
		NewQuilt(*semver.MustParse("0.17.1")),
		NewFabric(*semver.MustParse("0.1.0")),
		NewForge(*semver.MustParse("0.0.1")),
	}
	for i, a := range ordered {
		for j, b := range ordered {
			want := sign(i - j)
			if got := sign(a.Compare(b)); got != want {
				t.Errorf("compare(%v, %v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestLoaderJSON(t *testing.T) {
	loader := NewQuilt(*semver.MustParse("0.17.1-beta.3"))
	out, err := json.Marshal(loader)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"loader":"Quilt","version":"0.17.1-beta.3"}`
	if string(out) != want {
		t.Errorf("marshal gave %s, want %s", out, want)
	}

	var back Loader
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(loader) {
		t.Errorf("round trip gave %v, want %v", back, loader)
	}

	var unknown Loader
	if err := json.Unmarshal([]byte(`{"loader":"Rift","version":"1.0.0"}`), &unknown); err == nil {
		t.Error("expected an unknown loader to fail decoding")
	}
	if err := json.Unmarshal([]byte(`{"loader":"Forge"}`), &unknown); err == nil {
		t.Error("expected a missing version to fail decoding")
	}
}
