package landing

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// tokenPattern matches widget tokens with optional whitespace inside the
// braces: `{{ widget: tasks-overview }}` and `{{widget:tasks-overview}}`
// both parse. Keys are lowercase words joined by hyphens.
var tokenPattern = regexp.MustCompile(`\{\{\s*widget:\s*([a-z-]+)\s*\}\}`)

// ContentModel owns the mapping between a stored markdown document and its
// parsed segment form. The widget catalog is captured at construction and
// never mutated, so a single model can be shared across goroutines.
type ContentModel struct {
	catalog  interfaces.WidgetCatalog
	elements []elementPattern
}

type elementPattern struct {
	key         string
	selfClosing *regexp.Regexp
	paired      *regexp.Regexp
}

// NewContentModel builds a content model over the supplied catalog. Element
// replacement patterns for the editor bridge are compiled once here.
func NewContentModel(catalog interfaces.WidgetCatalog) *ContentModel {
	model := &ContentModel{catalog: catalog}
	for _, key := range catalog.Keys() {
		descriptor, ok := catalog.Lookup(key)
		if !ok || descriptor.Element == "" {
			continue
		}
		name := regexp.QuoteMeta(descriptor.Element)
		model.elements = append(model.elements, elementPattern{
			key:         descriptor.Key,
			selfClosing: regexp.MustCompile(`<` + name + `(?:\s[^>]*)?/>`),
			paired:      regexp.MustCompile(`<` + name + `(?:\s[^>]*)?>\s*</` + name + `\s*>`),
		})
	}
	return model
}

// Catalog exposes the widget catalog the model was built with.
func (m *ContentModel) Catalog() interfaces.WidgetCatalog {
	return m.catalog
}

// Parse splits a markdown document into ordered content segments. Tokens with
// keys outside the enumerated set pass through as markdown text so unknown
// tokens survive a parse/serialize round trip. Empty input yields exactly one
// empty markdown segment so callers always have a segment to render.
func (m *ContentModel) Parse(markdown string) []Segment {
	if markdown == "" {
		return []Segment{MarkdownSegment("")}
	}

	matches := tokenPattern.FindAllStringSubmatchIndex(markdown, -1)
	if len(matches) == 0 {
		return []Segment{MarkdownSegment(markdown)}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, match := range matches {
		start, end := match[0], match[1]
		key := markdown[match[2]:match[3]]

		if start > last {
			segments = append(segments, MarkdownSegment(markdown[last:start]))
		}
		if m.catalog.Has(key) {
			segments = append(segments, WidgetSegment(key))
		} else {
			segments = append(segments, MarkdownSegment(markdown[start:end]))
		}
		last = end
	}
	if last < len(markdown) {
		segments = append(segments, MarkdownSegment(markdown[last:]))
	}
	return segments
}

// PresentKeys collects the recognized widget keys referenced by the document.
// Repeated tokens for the same key count once.
func (m *ContentModel) PresentKeys(markdown string) map[string]struct{} {
	present := make(map[string]struct{})
	for _, match := range tokenPattern.FindAllStringSubmatch(markdown, -1) {
		key := strings.TrimSpace(match[1])
		if m.catalog.Has(key) {
			present[key] = struct{}{}
		}
	}
	return present
}

// MissingKeys returns the enumerated keys absent from the document, in
// canonical enumeration order rather than document order. Hosts use this to
// offer "insert missing widget" affordances.
func (m *ContentModel) MissingKeys(markdown string) []string {
	present := m.PresentKeys(markdown)
	missing := make([]string, 0, len(m.catalog.Keys()))
	for _, key := range m.catalog.Keys() {
		if _, ok := present[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
