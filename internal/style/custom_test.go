// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/paperkit/pkg/types"
)

// writeFile is a test helper that creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "templates.yaml", `jgr:
  name: Journal of Geophysical Research
  font: Georgia
  font_size: 11
  line_spacing: 1.5
  sections: [Abstract, Introduction, References]
`)

	r := NewRegistry()
	if err := LoadTemplates(r, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := r.Resolve("jgr", types.Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Font != "Georgia" {
		t.Errorf("Font = %q, want %q", p.Font, "Georgia")
	}
	if p.FontSize != 11 {
		t.Errorf("FontSize = %d, want 11", p.FontSize)
	}
	// Omitted fields fall back to the base defaults.
	if p.TitleSize != 16 {
		t.Errorf("TitleSize = %d, want 16 (default)", p.TitleSize)
	}
	if p.PaperSize != "a4" {
		t.Errorf("PaperSize = %q, want %q (default)", p.PaperSize, "a4")
	}
	if len(p.Sections) != 3 {
		t.Errorf("Sections = %v, want 3 entries", p.Sections)
	}
}

func TestLoadTemplatesReplacesBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "templates.yaml", `nature:
  name: Nature (house copy)
  font: Helvetica
`)

	r := NewRegistry()
	if err := LoadTemplates(r, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := r.Get("nature")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Font != "Helvetica" {
		t.Errorf("Font = %q, want %q", p.Font, "Helvetica")
	}
	// Overriding a builtin must not duplicate its name in the listing.
	names := r.Names()
	count := 0
	for _, n := range names {
		if n == "nature" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("nature listed %d times in %v", count, names)
	}
}

func TestLoadTemplatesErrors(t *testing.T) {
	r := NewRegistry()

	if err := LoadTemplates(r, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, t.TempDir(), "bad.yaml", ":::bad\n")
	if err := LoadTemplates(r, bad); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
