package landing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

func TestToEditorFormAssignsSequentialOrder(t *testing.T) {
	model := newTestModel(t)

	got := model.ToEditorForm("a {{widget:tasks-overview}} b {{widget:tasks-overview}} c")

	if !strings.Contains(got, `<tasks-overview-widget data-key="tasks-overview" data-order="0"></tasks-overview-widget>`) {
		t.Fatalf("expected order 0 element, got %q", got)
	}
	if !strings.Contains(got, `data-order="1"`) {
		t.Fatalf("expected order 1 element, got %q", got)
	}
	if !strings.HasPrefix(got, "a ") || !strings.HasSuffix(got, " c") {
		t.Fatalf("expected markdown spans preserved, got %q", got)
	}
}

func TestToEditorFormOrderCountsWidgetSegmentsOnly(t *testing.T) {
	model := newTestModel(t)

	got := model.ToEditorForm("x\n\n{{widget:your-balance}}\n\nmiddle\n\n{{widget:member-roster}}")
	if !strings.Contains(got, `<your-balance-widget data-key="your-balance" data-order="0">`) {
		t.Fatalf("expected first widget at order 0, got %q", got)
	}
	if !strings.Contains(got, `<member-roster-widget data-key="member-roster" data-order="1">`) {
		t.Fatalf("expected second widget at order 1, got %q", got)
	}
}

func TestToEditorFormUnregisteredElementFallsBackToToken(t *testing.T) {
	catalog := stubCatalog{keys: []string{"bare-key"}}
	model := NewContentModel(catalog)

	got := model.ToEditorForm("{{widget:bare-key}}")
	if got != "{{widget:bare-key}}" {
		t.Fatalf("expected canonical token fallback, got %q", got)
	}
}

func TestFromEditorFormReplacesBothElementForms(t *testing.T) {
	model := newTestModel(t)

	input := `intro <tasks-overview-widget data-key="tasks-overview" data-order="3"/> middle ` +
		`<your-balance-widget data-order="0"></your-balance-widget> outro`
	got := model.FromEditorForm(input)
	want := "intro {{widget:tasks-overview}} middle {{widget:your-balance}} outro"
	if got != want {
		t.Fatalf("unexpected conversion:\n got %q\nwant %q", got, want)
	}
}

func TestFromEditorFormIgnoresAttributes(t *testing.T) {
	model := newTestModel(t)

	got := model.FromEditorForm(`<member-roster-widget class="x" contenteditable="false"></member-roster-widget>`)
	if got != "{{widget:member-roster}}" {
		t.Fatalf("expected token regardless of attributes, got %q", got)
	}
}

func TestEditorRoundTripPreservesSegments(t *testing.T) {
	model := newTestModel(t)

	inputs := []string{
		"",
		"text only",
		"before {{widget:tasks-overview}} after",
		"{{widget:your-balance}}\n\n{{widget:your-balance}}",
		"{{ widget: fairness-score }} with sloppy spacing",
		"unknown {{widget:not-real}} stays literal",
	}
	for _, input := range inputs {
		restored := model.FromEditorForm(model.ToEditorForm(input))
		if !reflect.DeepEqual(model.Parse(restored), model.Parse(input)) {
			t.Fatalf("round trip changed segments for %q: restored %q", input, restored)
		}
	}
}

// stubCatalog recognizes keys without registering editor element names.
type stubCatalog struct {
	keys []string
}

func (s stubCatalog) Keys() []string { return s.keys }

func (s stubCatalog) Lookup(key string) (interfaces.WidgetDescriptor, bool) {
	for _, k := range s.keys {
		if k == key {
			return interfaces.WidgetDescriptor{Key: k}, true
		}
	}
	return interfaces.WidgetDescriptor{}, false
}

func (s stubCatalog) LookupElement(string) (interfaces.WidgetDescriptor, bool) {
	return interfaces.WidgetDescriptor{}, false
}

func (s stubCatalog) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}
