package landing

import (
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// RenderedSegment is one display-ready unit of the landing page: rendered
// HTML for markdown segments, a widget descriptor plus its widget order for
// widget segments.
type RenderedSegment struct {
	Type   SegmentType
	HTML   template.HTML
	Widget interfaces.WidgetDescriptor
	Order  int
}

// Service orchestrates the landing content model: effective-content
// resolution, rendering, and editing sessions with draft lifecycle tracking.
// All document transformations stay pure; the only asynchronous boundary is
// the host-supplied saver.
type Service struct {
	model    *ContentModel
	renderer interfaces.MarkdownRenderer
	saver    interfaces.Saver
	template *Template
	logger   interfaces.Logger
	metrics  interfaces.LandingMetrics
}

// ServiceOption customises service behaviour.
type ServiceOption func(*Service)

// WithRenderer attaches the markdown renderer used by RenderSegments.
func WithRenderer(renderer interfaces.MarkdownRenderer) ServiceOption {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithSaver wires the host persistence callback used by editing sessions.
func WithSaver(saver interfaces.Saver) ServiceOption {
	return func(s *Service) {
		if saver != nil {
			s.saver = saver
		}
	}
}

// WithDefaultTemplate overrides the built-in default document with a loaded
// template.
func WithDefaultTemplate(tpl *Template) ServiceOption {
	return func(s *Service) {
		if tpl != nil {
			s.template = tpl
		}
	}
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics wires the metrics recorder used for telemetry.
func WithMetrics(metrics interfaces.LandingMetrics) ServiceOption {
	return func(s *Service) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// NewService constructs a landing service over the supplied catalog.
func NewService(catalog interfaces.WidgetCatalog, opts ...ServiceOption) *Service {
	service := &Service{
		model:   NewContentModel(catalog),
		logger:  logging.NoOp(),
		metrics: NoOpMetrics(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Model exposes the underlying content model for direct parsing and
// transformation.
func (s *Service) Model() *ContentModel {
	return s.model
}

// Resolve returns the effective markdown for a household: the saved document
// when present and non-blank, otherwise the default document templated with
// the household name.
func (s *Service) Resolve(saved *string, householdName string, defaultKeys []string) string {
	fallback := s.defaultDocument(householdName, defaultKeys)
	return EffectiveContent(NormalizeContent(saved), fallback)
}

func (s *Service) defaultDocument(householdName string, keys []string) string {
	if s.template != nil {
		return s.template.Render(householdName)
	}
	return DefaultDocument(householdName, keys)
}

// RenderSegments parses the document and renders every markdown segment to
// HTML, leaving widget segments as structured descriptor entries the host can
// map to live views. Widget keys that somehow escaped the catalog render as
// their canonical token text.
func (s *Service) RenderSegments(ctx context.Context, markdown string) ([]RenderedSegment, error) {
	if s.renderer == nil {
		return nil, ErrRendererRequired
	}

	s.metrics.IncrementParse()
	segments := s.model.Parse(markdown)

	logger := logging.WithFields(s.baseLogger(ctx), map[string]any{
		"operation": "landing.render",
		"segments":  len(segments),
	})

	rendered := make([]RenderedSegment, 0, len(segments))
	order := 0
	for _, segment := range segments {
		if segment.Type == SegmentWidget {
			descriptor, ok := s.model.Catalog().Lookup(segment.Key)
			if !ok {
				rendered = append(rendered, RenderedSegment{
					Type: SegmentMarkdown,
					HTML: template.HTML(template.HTMLEscapeString(Token(segment.Key))),
				})
				order++
				continue
			}
			rendered = append(rendered, RenderedSegment{
				Type:   SegmentWidget,
				Widget: descriptor,
				Order:  order,
			})
			order++
			continue
		}

		html, err := s.renderer.Render([]byte(segment.Content))
		if err != nil {
			logging.WithFields(logger, map[string]any{
				"error": err,
			}).Error("landing.service.render_failed")
			return nil, fmt.Errorf("landing: render segment: %w", err)
		}
		rendered = append(rendered, RenderedSegment{
			Type: SegmentMarkdown,
			HTML: template.HTML(html),
		})
	}

	logger.Debug("landing.service.render_completed")
	return rendered, nil
}

// EditSession tracks one member's draft of a household landing document. The
// draft only replaces the persisted baseline on a successful save; closing
// without saving leaves the baseline untouched.
type EditSession struct {
	service     *Service
	householdID string
	saver       interfaces.Saver

	mu       sync.Mutex
	baseline string
	draft    string
	open     bool
	saving   bool
}

// EditOption customises a single editing session.
type EditOption func(*EditSession)

// WithSessionSaver overrides the service saver for one session, typically to
// stamp saves with the acting member.
func WithSessionSaver(saver interfaces.Saver) EditOption {
	return func(e *EditSession) {
		if saver != nil {
			e.saver = saver
		}
	}
}

// BeginEdit opens an editing session over the effective document. Only the
// owner role may edit; every other role, including an absent one, is denied.
func (s *Service) BeginEdit(householdID string, role string, effective string, opts ...EditOption) (*EditSession, error) {
	if !CanEdit(role) {
		return nil, ErrEditDenied
	}

	logging.WithFields(s.logger, map[string]any{
		"operation": "landing.edit.begin",
		"household": householdID,
	}).Debug("landing.service.edit_started")

	session := &EditSession{
		service:     s,
		householdID: householdID,
		saver:       s.saver,
		baseline:    effective,
		draft:       effective,
		open:        true,
	}
	for _, opt := range opts {
		opt(session)
	}
	return session, nil
}

// Draft returns the current draft markdown.
func (e *EditSession) Draft() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Open reports whether the editing surface is still open.
func (e *EditSession) Open() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

// Saving reports whether a save is in flight.
func (e *EditSession) Saving() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saving
}

// UpdateDraft replaces the draft with markdown already in canonical form.
func (e *EditSession) UpdateDraft(markdown string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrSessionClosed
	}
	e.draft = markdown
	return nil
}

// EditorContent returns the draft converted into the rich-text editor
// representation.
func (e *EditSession) EditorContent() string {
	return e.service.model.ToEditorForm(e.Draft())
}

// ApplyEditorContent replaces the draft with editor content converted back to
// canonical tokens.
func (e *EditSession) ApplyEditorContent(content string) error {
	return e.UpdateDraft(e.service.model.FromEditorForm(content))
}

// MoveWidget reorders the draft's widgets by widget order. Malformed indices
// leave the draft unchanged.
func (e *EditSession) MoveWidget(fromIndex, toIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrSessionClosed
	}
	e.draft = e.service.model.MoveWidget(e.draft, fromIndex, toIndex)
	return nil
}

// Save persists the draft through the host saver. Concurrent submissions are
// rejected while a save is pending. A failed save keeps the draft and the
// open editing surface intact; a successful save promotes the draft to the
// new baseline. There is no cancellation of an in-flight save.
func (e *EditSession) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	saver := e.saver
	if saver == nil {
		e.mu.Unlock()
		return ErrSaverRequired
	}
	e.saving = true
	draft := e.draft
	e.mu.Unlock()

	logger := logging.WithFields(e.service.baseLogger(ctx), map[string]any{
		"operation": "landing.edit.save",
		"household": e.householdID,
	})

	start := time.Now()
	err := saver(ctx, e.householdID, draft)
	e.service.metrics.ObserveSaveDuration(time.Since(start))

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false

	if err != nil {
		e.service.metrics.IncrementSaveError()
		logging.WithFields(logger, map[string]any{
			"error": err,
		}).Error("landing.service.save_failed")
		return fmt.Errorf("landing: save document: %w", err)
	}

	e.baseline = draft
	if !e.open {
		// The surface closed while the save was pending; now that the save
		// resolved the draft can settle on the new baseline.
		e.draft = e.baseline
	}
	logger.Info("landing.service.save_succeeded")
	return nil
}

// Close marks the editing surface closed. The draft resets to the baseline
// only when no save is in flight; a pending save keeps the draft until it
// resolves.
func (e *EditSession) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = false
	if ShouldResetDraft(e.open, e.saving) {
		e.draft = e.baseline
	}
}

func (s *Service) baseLogger(ctx context.Context) interfaces.Logger {
	logger := s.logger
	if logger == nil {
		logger = logging.NoOp()
	}
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	return logger
}
