package landing

import (
	"strings"
	"testing"
)

func TestNormalizeContentAbsentBecomesEmpty(t *testing.T) {
	if got := NormalizeContent(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}

	saved := "content"
	if got := NormalizeContent(&saved); got != "content" {
		t.Fatalf("expected saved content, got %q", got)
	}
}

func TestEffectiveContentFallsBackOnBlank(t *testing.T) {
	fallback := "# Default"

	if got := EffectiveContent("", fallback); got != fallback {
		t.Fatalf("expected fallback for empty, got %q", got)
	}
	if got := EffectiveContent("   \n\t", fallback); got != fallback {
		t.Fatalf("expected fallback for whitespace-only, got %q", got)
	}
}

func TestEffectiveContentPreservesSurroundingWhitespace(t *testing.T) {
	// Trimming is only an emptiness test; saved content is returned untouched.
	if got := EffectiveContent("  x  ", "fallback"); got != "  x  " {
		t.Fatalf("expected untrimmed content, got %q", got)
	}
}

func TestDefaultDocumentTemplatesHouseholdName(t *testing.T) {
	doc := DefaultDocument("Casa Verde", []string{"tasks-overview", "your-balance"})

	if !strings.Contains(doc, "Casa Verde") {
		t.Fatalf("expected household name in document: %q", doc)
	}
	if !strings.Contains(doc, "{{widget:tasks-overview}}") {
		t.Fatalf("expected tasks-overview token in document: %q", doc)
	}
	if !strings.Contains(doc, "{{widget:your-balance}}") {
		t.Fatalf("expected your-balance token in document: %q", doc)
	}
}

func TestDefaultDocumentBlankNameUsesGenericGreeting(t *testing.T) {
	doc := DefaultDocument("   ", nil)
	if !strings.Contains(doc, "your household") {
		t.Fatalf("expected generic greeting, got %q", doc)
	}
}

func TestDefaultDocumentIsDeterministic(t *testing.T) {
	keys := []string{"recent-activity"}
	if DefaultDocument("Home", keys) != DefaultDocument("Home", keys) {
		t.Fatalf("expected deterministic default document")
	}
}
