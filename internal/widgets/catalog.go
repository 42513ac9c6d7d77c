package widgets

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// keyPattern mirrors the token grammar: lowercase words joined by hyphens.
var keyPattern = regexp.MustCompile(`^[a-z-]+$`)

// Catalog is the immutable widget set consulted by the parser and editor
// bridge. Build one with NewCatalog and share it freely; it is never mutated
// after construction, so no locking is required.
type Catalog struct {
	order     []string
	byKey     map[string]interfaces.WidgetDescriptor
	byElement map[string]interfaces.WidgetDescriptor
}

// NewCatalog validates the supplied descriptors and builds a catalog. Keys
// must match the token grammar, element names must be unique, and config
// schemas must compile as JSON Schema. Descriptor order becomes the canonical
// enumeration order used by MissingKeys.
func NewCatalog(descriptors []interfaces.WidgetDescriptor) (*Catalog, error) {
	catalog := &Catalog{
		order:     make([]string, 0, len(descriptors)),
		byKey:     make(map[string]interfaces.WidgetDescriptor, len(descriptors)),
		byElement: make(map[string]interfaces.WidgetDescriptor, len(descriptors)),
	}

	for _, descriptor := range descriptors {
		key := strings.TrimSpace(descriptor.Key)
		if key == "" || !keyPattern.MatchString(key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, descriptor.Key)
		}
		element := strings.TrimSpace(descriptor.Element)
		if element == "" {
			return nil, fmt.Errorf("%w: widget %q", ErrInvalidElement, key)
		}
		if _, exists := catalog.byKey[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		if _, exists := catalog.byElement[element]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateElement, element)
		}
		if descriptor.Schema != nil {
			if _, err := compileSchema(descriptor.Schema); err != nil {
				return nil, fmt.Errorf("%w: widget %q: %v", ErrSchemaInvalid, key, err)
			}
		}

		descriptor.Key = key
		descriptor.Element = element
		catalog.order = append(catalog.order, key)
		catalog.byKey[key] = descriptor
		catalog.byElement[element] = descriptor
	}

	return catalog, nil
}

// MustNewCatalog builds a catalog and panics on invalid descriptors. Reserved
// for compiled-in descriptor sets that are covered by tests.
func MustNewCatalog(descriptors []interfaces.WidgetDescriptor) *Catalog {
	catalog, err := NewCatalog(descriptors)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Keys returns every widget key in canonical enumeration order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Lookup resolves a descriptor by widget key.
func (c *Catalog) Lookup(key string) (interfaces.WidgetDescriptor, bool) {
	descriptor, ok := c.byKey[strings.TrimSpace(key)]
	return descriptor, ok
}

// LookupElement resolves a descriptor by its editor element name.
func (c *Catalog) LookupElement(element string) (interfaces.WidgetDescriptor, bool) {
	descriptor, ok := c.byElement[strings.TrimSpace(element)]
	return descriptor, ok
}

// Has reports whether the key belongs to the enumerated set.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[strings.TrimSpace(key)]
	return ok
}

// Descriptors returns every descriptor in enumeration order.
func (c *Catalog) Descriptors() []interfaces.WidgetDescriptor {
	out := make([]interfaces.WidgetDescriptor, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	return out
}

var _ interfaces.WidgetCatalog = (*Catalog)(nil)
