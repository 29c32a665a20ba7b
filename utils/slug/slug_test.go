package slug

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Alpha Institute of Tech", "alpha-institute-of-tech"},
		{"punctuation", "St. Mary's College, London", "st-mary-s-college-london"},
		{"collapses runs", "A   --  B", "a-b"},
		{"trims edges", "  -Hello World-  ", "hello-world"},
		{"already slug", "neet-preparation-guide", "neet-preparation-guide"},
		{"digits kept", "Top 10 MBA Colleges 2025", "top-10-mba-colleges-2025"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Alpha Institute of Tech", "NEET 2025!", "  spaced   out  "}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSlugifyCharset(t *testing.T) {
	got := Slugify("Crème Brûlée & Friends (2024)!")
	if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
		t.Errorf("slug has edge hyphen: %q", got)
	}
	if strings.Contains(got, "--") {
		t.Errorf("slug has consecutive hyphens: %q", got)
	}
	for _, r := range got {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		if !ok {
			t.Errorf("slug contains invalid rune %q: %q", r, got)
		}
	}
}

func TestAutoSlug(t *testing.T) {
	// Slug still tracks the name while auto-derived
	if got := AutoSlug("Alpha Institute", "alpha-institute", "Alpha Institute of Tech"); got != "alpha-institute-of-tech" {
		t.Errorf("expected regenerated slug, got %q", got)
	}

	// Empty slug is always regenerated
	if got := AutoSlug("Alpha Institute", "", "Beta College"); got != "beta-college" {
		t.Errorf("expected regenerated slug, got %q", got)
	}

	// A manually edited slug is never overwritten
	if got := AutoSlug("Alpha Institute", "my-custom-slug", "Alpha Institute of Tech"); got != "my-custom-slug" {
		t.Errorf("manual slug was overwritten: %q", got)
	}
}
