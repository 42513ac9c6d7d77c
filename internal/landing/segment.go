package landing

import "strings"

// SegmentType discriminates the two content segment variants.
type SegmentType string

const (
	// SegmentMarkdown marks an opaque markdown text span.
	SegmentMarkdown SegmentType = "markdown"
	// SegmentWidget marks an inline widget reference.
	SegmentWidget SegmentType = "widget"
)

// Segment is one ordered unit of a parsed landing document: either a verbatim
// markdown slice or a widget reference identified by key.
type Segment struct {
	Type SegmentType
	// Content holds the verbatim source slice for markdown segments.
	Content string
	// Key holds the widget key for widget segments.
	Key string
}

// MarkdownSegment builds a markdown text segment.
func MarkdownSegment(content string) Segment {
	return Segment{Type: SegmentMarkdown, Content: content}
}

// WidgetSegment builds a widget reference segment.
func WidgetSegment(key string) Segment {
	return Segment{Type: SegmentWidget, Key: key}
}

// Token returns the canonical wire form for a widget key. Output never
// carries whitespace inside the braces, although the parser tolerates it.
func Token(key string) string {
	return "{{widget:" + key + "}}"
}

// Text returns the textual form of the segment: the verbatim slice for
// markdown segments, the canonical token for widget segments.
func (s Segment) Text() string {
	if s.Type == SegmentWidget {
		return Token(s.Key)
	}
	return s.Content
}

// Join re-serializes segments into a single document. Markdown segments
// reproduce their slice verbatim and widget segments reproduce their
// canonical token, so Join(Parse(m)) reconstructs m byte for byte whenever
// m's tokens are already canonical.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteString(segment.Text())
	}
	return b.String()
}

// widgetPositions returns the segment index of every widget segment in
// document order. The slice index is the zero-based widget order used by the
// editor bridge and the reorder operations.
func widgetPositions(segments []Segment) []int {
	positions := make([]int, 0, len(segments))
	for i, segment := range segments {
		if segment.Type == SegmentWidget {
			positions = append(positions, i)
		}
	}
	return positions
}
