package landing

import (
	"fmt"
	"strconv"
)

// ToEditorForm converts a markdown document into the rich-text editor
// representation: markdown spans pass through unchanged while widget segments
// become inline elements carrying the widget key and an explicit zero-based
// order attribute. The order counts widget segments only, in document order,
// and is how the editor addresses a specific widget instance when several
// share a key. A key without a registered element name falls back to the
// canonical token text so no content is lost.
func (m *ContentModel) ToEditorForm(markdown string) string {
	segments := m.Parse(markdown)

	var b []byte
	order := 0
	for _, segment := range segments {
		if segment.Type != SegmentWidget {
			b = append(b, segment.Content...)
			continue
		}

		descriptor, ok := m.catalog.Lookup(segment.Key)
		if !ok || descriptor.Element == "" {
			b = append(b, Token(segment.Key)...)
			order++
			continue
		}

		b = append(b, fmt.Sprintf(`<%s data-key=%q data-order=%q></%s>`,
			descriptor.Element, segment.Key, strconv.Itoa(order), descriptor.Element)...)
		order++
	}
	return string(b)
}

// FromEditorForm converts editor content back into canonical markdown by
// replacing every occurrence of each registered widget element, in both
// self-closing and empty-paired form and regardless of attributes, with the
// canonical token for its key. Replacement is purely positional: the order
// attribute is ignored, so document order always wins even when order
// attributes are inconsistent.
func (m *ContentModel) FromEditorForm(content string) string {
	for _, element := range m.elements {
		token := Token(element.key)
		content = element.paired.ReplaceAllString(content, token)
		content = element.selfClosing.ReplaceAllString(content, token)
	}
	return content
}
