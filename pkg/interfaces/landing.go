package interfaces

import (
	"context"
	"time"
)

// WidgetDescriptor describes one member of the closed widget set: the token
// key used inside markdown documents, the inline element name used by the
// rich-text editor bridge, and presentation metadata for host applications.
type WidgetDescriptor struct {
	Key         string
	Element     string
	Title       string
	Description string
	Category    string
	// Schema optionally constrains per-widget configuration payloads using
	// JSON Schema (draft 2020-12). A nil schema accepts any configuration.
	Schema map[string]any
}

// WidgetCatalog exposes the enumerated widget set. Implementations must be
// immutable after construction so parsers can consult them without locking.
type WidgetCatalog interface {
	// Keys returns every widget key in canonical enumeration order.
	Keys() []string
	// Lookup resolves a descriptor by widget key.
	Lookup(key string) (WidgetDescriptor, bool)
	// LookupElement resolves a descriptor by its editor element name.
	LookupElement(element string) (WidgetDescriptor, bool)
	// Has reports whether the key belongs to the enumerated set.
	Has(key string) bool
}

// MarkdownRenderer converts a markdown fragment into HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
}

// Saver persists the canonical markdown for a household. It is supplied by
// the host application; the landing service never performs I/O itself.
type Saver func(ctx context.Context, householdID string, markdown string) error

// LandingMetrics collects telemetry emitted by the landing service.
type LandingMetrics interface {
	ObserveSaveDuration(duration time.Duration)
	IncrementSaveError()
	IncrementParse()
}
