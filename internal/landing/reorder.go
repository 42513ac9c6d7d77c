package landing

import "strings"

// MoveWidget moves the widget at fromIndex to toIndex, where both indices
// count widget segments only (zero-based, document order). Equal indices and
// indices that resolve to no widget return the input unchanged; a malformed
// reorder request must never corrupt the document. The result is re-serialized
// canonically, so token whitespace is normalized as a side effect.
func (m *ContentModel) MoveWidget(markdown string, fromIndex, toIndex int) string {
	if fromIndex == toIndex {
		return markdown
	}

	segments := m.Parse(markdown)
	positions := widgetPositions(segments)
	if fromIndex < 0 || fromIndex >= len(positions) || toIndex < 0 || toIndex >= len(positions) {
		return markdown
	}

	fromPos := positions[fromIndex]
	toPos := positions[toIndex]

	moved := segments[fromPos]
	remaining := make([]Segment, 0, len(segments)-1)
	remaining = append(remaining, segments[:fromPos]...)
	remaining = append(remaining, segments[fromPos+1:]...)

	// Removing the source shifts later segments left by one, so reusing the
	// raw target position lands the widget after the segment currently
	// occupying toIndex when moving forward and before it when moving
	// backward. That is exactly array-move semantics.
	insertPos := toPos
	if insertPos > len(remaining) {
		insertPos = len(remaining)
	}

	reordered := make([]Segment, 0, len(segments))
	reordered = append(reordered, remaining[:insertPos]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, remaining[insertPos:]...)

	return Join(reordered)
}

// RemoveWidget deletes the widget at the given widget order. Out-of-range
// orders return the input unchanged.
func (m *ContentModel) RemoveWidget(markdown string, order int) string {
	segments := m.Parse(markdown)
	positions := widgetPositions(segments)
	if order < 0 || order >= len(positions) {
		return markdown
	}

	pos := positions[order]
	remaining := make([]Segment, 0, len(segments)-1)
	remaining = append(remaining, segments[:pos]...)
	remaining = append(remaining, segments[pos+1:]...)
	return Join(remaining)
}

// InsertWidget appends a token for the key on its own paragraph at the end of
// the document. Keys outside the enumerated set are ignored.
func (m *ContentModel) InsertWidget(markdown string, key string) string {
	if !m.catalog.Has(key) {
		return markdown
	}

	token := Token(key)
	if strings.TrimSpace(markdown) == "" {
		return token + "\n"
	}
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	return markdown + "\n" + token + "\n"
}
