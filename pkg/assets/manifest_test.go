package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveKnownAndUnknown(t *testing.T) {
	m := NewManifest()
	m.Set("reactor.js", "reactor.a1b2c3d4.min.js")

	if got := m.Resolve("reactor.js"); got != "reactor.a1b2c3d4.min.js" {
		t.Errorf("Resolve = %q", got)
	}
	if got := m.Resolve("missing.css"); got != "missing.css" {
		t.Errorf("unknown Resolve = %q, want passthrough", got)
	}
}

func TestLoadManifestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	content := `{"reactor.js": "reactor.abc123.js", "reactor.css": "reactor.def456.css"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
	if !m.Has("reactor.css") {
		t.Error("Has(reactor.css) = false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load succeeded for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	os.WriteFile(path, []byte("{broken"), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("Load succeeded for invalid JSON")
	}
}

func TestResolverPrefixes(t *testing.T) {
	m := NewManifest()
	m.Set("reactor.js", "reactor.abc.js")

	r := NewResolver(m, "/static/")
	if got := r.Asset("reactor.js"); got != "/static/reactor.abc.js" {
		t.Errorf("Asset = %q", got)
	}

	p := NewPassthroughResolver("/static/")
	if got := p.Asset("reactor.js"); got != "/static/reactor.js" {
		t.Errorf("passthrough Asset = %q", got)
	}
}
