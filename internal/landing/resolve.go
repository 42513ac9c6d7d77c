package landing

import (
	"fmt"
	"strings"
)

// NormalizeContent converts an absent document into an empty string. Storage
// layers that model the column as nullable funnel reads through this before
// any further processing.
func NormalizeContent(saved *string) string {
	if saved == nil {
		return ""
	}
	return *saved
}

// EffectiveContent returns the markdown that should actually render: the
// fallback when the saved document is empty or whitespace-only, otherwise the
// saved document untouched. Trimming is applied only for the emptiness test;
// leading and trailing whitespace in genuinely saved content is preserved.
func EffectiveContent(saved string, fallback string) string {
	if strings.TrimSpace(saved) == "" {
		return fallback
	}
	return saved
}

// DefaultDocument builds the deterministic fallback document for a household
// that has never saved a landing page: a greeting headed with the household
// name followed by the supplied widget tokens, one per paragraph.
func DefaultDocument(householdName string, keys []string) string {
	name := strings.TrimSpace(householdName)
	if name == "" {
		name = "your household"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Welcome home, %s\n\n", name)
	b.WriteString("This page is yours to customize. Edit the text or rearrange the widgets below.\n")
	for _, key := range keys {
		b.WriteString("\n" + Token(key) + "\n")
	}
	return b.String()
}
