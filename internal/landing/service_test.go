package landing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-landing/internal/widgets"
)

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	return NewService(widgets.BuiltinCatalog(), opts...)
}

func TestResolveUsesSavedContentWhenPresent(t *testing.T) {
	service := newTestService(t)

	saved := "  # Mine  "
	got := service.Resolve(&saved, "Casa Verde", widgets.DefaultKeys())
	if got != saved {
		t.Fatalf("expected saved content untouched, got %q", got)
	}
}

func TestResolveFallsBackToDefaultDocument(t *testing.T) {
	service := newTestService(t)

	for _, saved := range []*string{nil, ptr(""), ptr("  \n ")} {
		got := service.Resolve(saved, "Casa Verde", widgets.DefaultKeys())
		if !strings.Contains(got, "Casa Verde") {
			t.Fatalf("expected templated default document, got %q", got)
		}
		for _, key := range widgets.DefaultKeys() {
			if !strings.Contains(got, Token(key)) {
				t.Fatalf("expected default token %s in %q", key, got)
			}
		}
	}
}

func TestBeginEditRequiresOwnerRole(t *testing.T) {
	service := newTestService(t)

	for _, role := range []string{"member", "admin", ""} {
		if _, err := service.BeginEdit("h1", role, "doc"); !errors.Is(err, ErrEditDenied) {
			t.Fatalf("expected ErrEditDenied for role %q, got %v", role, err)
		}
	}

	session, err := service.BeginEdit("h1", RoleOwner, "doc")
	if err != nil {
		t.Fatalf("BeginEdit returned error: %v", err)
	}
	if session.Draft() != "doc" {
		t.Fatalf("expected draft seeded from effective content, got %q", session.Draft())
	}
}

func TestSavePromotesDraftToBaseline(t *testing.T) {
	var savedMarkdown string
	service := newTestService(t, WithSaver(func(_ context.Context, householdID, markdown string) error {
		if householdID != "h1" {
			t.Fatalf("unexpected household id %q", householdID)
		}
		savedMarkdown = markdown
		return nil
	}))

	session, err := service.BeginEdit("h1", RoleOwner, "old")
	if err != nil {
		t.Fatalf("BeginEdit returned error: %v", err)
	}
	if err := session.UpdateDraft("new content"); err != nil {
		t.Fatalf("UpdateDraft returned error: %v", err)
	}
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if savedMarkdown != "new content" {
		t.Fatalf("saver received %q", savedMarkdown)
	}
	session.Close()
	if session.Draft() != "new content" {
		t.Fatalf("expected baseline promoted to saved draft, got %q", session.Draft())
	}
}

func TestFailedSaveKeepsDraftAndSurfacesError(t *testing.T) {
	wantErr := errors.New("persistence down")
	service := newTestService(t, WithSaver(func(context.Context, string, string) error {
		return wantErr
	}))

	session, _ := service.BeginEdit("h1", RoleOwner, "old")
	if err := session.UpdateDraft("edited"); err != nil {
		t.Fatalf("UpdateDraft returned error: %v", err)
	}

	err := session.Save(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped saver error, got %v", err)
	}
	if session.Draft() != "edited" {
		t.Fatalf("expected draft retained after failed save, got %q", session.Draft())
	}
	if session.Saving() {
		t.Fatalf("expected in-flight flag cleared after failure")
	}
}

func TestConcurrentSaveRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	service := newTestService(t, WithSaver(func(context.Context, string, string) error {
		close(started)
		<-release
		return nil
	}))

	session, _ := service.BeginEdit("h1", RoleOwner, "doc")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := session.Save(context.Background()); err != nil {
			t.Errorf("first save failed: %v", err)
		}
	}()

	<-started
	if err := session.Save(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}

	close(release)
	wg.Wait()
}

func TestCloseWithoutSaveResetsDraft(t *testing.T) {
	service := newTestService(t, WithSaver(func(context.Context, string, string) error { return nil }))

	session, _ := service.BeginEdit("h1", RoleOwner, "baseline")
	if err := session.UpdateDraft("scratch"); err != nil {
		t.Fatalf("UpdateDraft returned error: %v", err)
	}
	session.Close()

	if session.Draft() != "baseline" {
		t.Fatalf("expected draft reset on close, got %q", session.Draft())
	}
	if err := session.UpdateDraft("more"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestCloseDuringInFlightSaveRetainsDraft(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	service := newTestService(t, WithSaver(func(context.Context, string, string) error {
		close(started)
		<-release
		return nil
	}))

	session, _ := service.BeginEdit("h1", RoleOwner, "baseline")
	if err := session.UpdateDraft("pending"); err != nil {
		t.Fatalf("UpdateDraft returned error: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- session.Save(context.Background()) }()

	<-started
	session.Close()
	if session.Draft() != "pending" {
		t.Fatalf("expected draft retained while save pending, got %q", session.Draft())
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("save returned error: %v", err)
	}
	if session.Draft() != "pending" {
		t.Fatalf("expected draft settled on saved baseline, got %q", session.Draft())
	}
}

func TestSessionSaverOverridesServiceSaver(t *testing.T) {
	var serviceSaves, sessionSaves int
	service := newTestService(t, WithSaver(func(context.Context, string, string) error {
		serviceSaves++
		return nil
	}))

	session, err := service.BeginEdit("h1", RoleOwner, "doc", WithSessionSaver(
		func(context.Context, string, string) error {
			sessionSaves++
			return nil
		}))
	if err != nil {
		t.Fatalf("BeginEdit returned error: %v", err)
	}
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if sessionSaves != 1 || serviceSaves != 0 {
		t.Fatalf("expected session saver to handle the save, got session=%d service=%d", sessionSaves, serviceSaves)
	}
}

func TestSessionSaverWithoutServiceSaver(t *testing.T) {
	service := newTestService(t)

	session, err := service.BeginEdit("h1", RoleOwner, "doc", WithSessionSaver(
		func(context.Context, string, string) error { return nil }))
	if err != nil {
		t.Fatalf("BeginEdit returned error: %v", err)
	}
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("expected session saver to satisfy the save, got %v", err)
	}
}

func TestSaveWithoutSaverFails(t *testing.T) {
	service := newTestService(t)
	session, _ := service.BeginEdit("h1", RoleOwner, "doc")
	if err := session.Save(context.Background()); !errors.Is(err, ErrSaverRequired) {
		t.Fatalf("expected ErrSaverRequired, got %v", err)
	}
}

func TestEditorContentRoundTripThroughSession(t *testing.T) {
	service := newTestService(t)
	session, _ := service.BeginEdit("h1", RoleOwner, "a {{widget:tasks-overview}} b")

	editor := session.EditorContent()
	if !strings.Contains(editor, "tasks-overview-widget") {
		t.Fatalf("expected editor element in %q", editor)
	}
	if err := session.ApplyEditorContent(editor); err != nil {
		t.Fatalf("ApplyEditorContent returned error: %v", err)
	}
	if session.Draft() != "a {{widget:tasks-overview}} b" {
		t.Fatalf("expected canonical draft restored, got %q", session.Draft())
	}
}

func TestRenderSegmentsMarksWidgetOrder(t *testing.T) {
	service := newTestService(t, WithRenderer(stubRenderer{}))

	rendered, err := service.RenderSegments(context.Background(),
		"# Hi\n\n{{widget:tasks-overview}}\n\n{{widget:your-balance}}")
	if err != nil {
		t.Fatalf("RenderSegments returned error: %v", err)
	}

	orders := []int{}
	for _, segment := range rendered {
		if segment.Type == SegmentWidget {
			orders = append(orders, segment.Order)
		}
	}
	if len(orders) != 2 || orders[0] != 0 || orders[1] != 1 {
		t.Fatalf("unexpected widget orders: %v", orders)
	}
}

func TestRenderSegmentsRequiresRenderer(t *testing.T) {
	service := newTestService(t)
	if _, err := service.RenderSegments(context.Background(), "x"); !errors.Is(err, ErrRendererRequired) {
		t.Fatalf("expected ErrRendererRequired, got %v", err)
	}
}

func TestRenderSegmentsPropagatesRendererError(t *testing.T) {
	wantErr := errors.New("boom")
	service := newTestService(t, WithRenderer(stubRenderer{err: wantErr}))
	if _, err := service.RenderSegments(context.Background(), "text"); !errors.Is(err, wantErr) {
		t.Fatalf("expected renderer error, got %v", err)
	}
}

func TestSaveRecordsMetrics(t *testing.T) {
	metrics := newMetricsStub()
	service := newTestService(t,
		WithSaver(func(context.Context, string, string) error { return errors.New("nope") }),
		WithMetrics(metrics),
	)

	session, _ := service.BeginEdit("h1", RoleOwner, "doc")
	_ = session.Save(context.Background())

	if got := metrics.saveCount(); got != 1 {
		t.Fatalf("expected 1 save duration observation, got %d", got)
	}
	if got := metrics.saveErrors(); got != 1 {
		t.Fatalf("expected 1 save error, got %d", got)
	}
}

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(markdown []byte) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]byte("<p>"), append(markdown, []byte("</p>")...)...), nil
}

type metricsStub struct {
	mu        sync.Mutex
	durations []time.Duration
	errors    int
	parses    int
}

func newMetricsStub() *metricsStub {
	return &metricsStub{}
}

func (m *metricsStub) ObserveSaveDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations = append(m.durations, duration)
}

func (m *metricsStub) IncrementSaveError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors++
}

func (m *metricsStub) IncrementParse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parses++
}

func (m *metricsStub) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.durations)
}

func (m *metricsStub) saveErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors
}

func ptr(s string) *string {
	return &s
}
