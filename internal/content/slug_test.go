package content_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-devlog/internal/content"
)

func TestDeriveSlugNormalizesTitle(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":        "hello-world",
		"My First Devlog":      "my-first-devlog",
		"  Spaces   Collapse ": "spaces-collapse",
	}
	for title, want := range cases {
		got := content.DeriveSlug(content.KindDevlog, title)
		if got != want {
			t.Fatalf("DeriveSlug(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestDeriveSlugFallbackForUnrepresentableTitles(t *testing.T) {
	for _, title := range []string{"", "   ", "🎉🎉🎉", "!!!"} {
		got := content.DeriveSlug(content.KindProject, title)
		if !strings.HasPrefix(got, "project-") {
			t.Fatalf("DeriveSlug(%q) = %q, want project- prefix", title, got)
		}
		suffix := strings.TrimPrefix(got, "project-")
		if len(suffix) != 8 {
			t.Fatalf("DeriveSlug(%q) = %q, want 8 hex character suffix", title, got)
		}
		for _, r := range suffix {
			if !strings.ContainsRune("0123456789abcdef", r) {
				t.Fatalf("DeriveSlug(%q) = %q, suffix is not hex", title, got)
			}
		}
	}
}

func TestDeriveSlugFallbackUsesEntityKind(t *testing.T) {
	got := content.DeriveSlug(content.KindDevlog, "🎉")
	if !strings.HasPrefix(got, "devlog-") {
		t.Fatalf("DeriveSlug = %q, want devlog- prefix", got)
	}
}

func TestDeriveSlugFallbackIsRandom(t *testing.T) {
	first := content.DeriveSlug(content.KindDevlog, "")
	second := content.DeriveSlug(content.KindDevlog, "")
	if first == second {
		t.Fatalf("expected distinct fallback slugs, got %q twice", first)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"hello-world", "devlog-a1b2c3d4", "a"}
	for _, slug := range valid {
		if !content.IsValidSlug(slug) {
			t.Fatalf("IsValidSlug(%q) = false, want true", slug)
		}
	}
	invalid := []string{"", "Hello World", "UPPER", "bad@slug"}
	for _, slug := range invalid {
		if content.IsValidSlug(slug) {
			t.Fatalf("IsValidSlug(%q) = true, want false", slug)
		}
	}
}
