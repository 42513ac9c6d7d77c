package landing

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

// householdPlaceholder is the marker template bodies use where the household
// display name should appear.
const householdPlaceholder = "[household]"

// Template is a default-document template loaded from a markdown file with
// YAML frontmatter. The body may reference the household name through the
// [household] placeholder and may carry widget tokens of its own; Widgets
// lists extra keys appended as tokens after the body.
type Template struct {
	Title   string
	Widgets []string
	Body    string
}

type templateEnvelope struct {
	Title   string   `yaml:"title"`
	Widgets []string `yaml:"widgets"`
}

// ParseTemplate reads a template document from the supplied reader.
func ParseTemplate(r io.Reader) (*Template, error) {
	var meta templateEnvelope
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("landing: parse template frontmatter: %w", err)
	}

	return &Template{
		Title:   strings.TrimSpace(meta.Title),
		Widgets: meta.Widgets,
		Body:    string(body),
	}, nil
}

// LoadTemplateFile reads a template document from disk.
func LoadTemplateFile(path string) (*Template, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("landing: read template %s: %w", path, err)
	}
	return ParseTemplate(bytes.NewReader(source))
}

// Render materializes the template for a household: the placeholder is
// replaced with the household name and any frontmatter widgets are appended
// as canonical tokens, one per paragraph.
func (t *Template) Render(householdName string) string {
	name := strings.TrimSpace(householdName)
	if name == "" {
		name = "your household"
	}

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(t.Body, householdPlaceholder, name))
	for _, key := range t.Widgets {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n" + Token(key) + "\n")
	}
	return b.String()
}
