package landing

import (
	"context"
	"fmt"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-landing/internal/commands"
	landingcmd "github.com/goliatone/go-landing/internal/commands/landing"
	"github.com/goliatone/go-landing/internal/documents"
	core "github.com/goliatone/go-landing/internal/landing"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/logging/gologger"
	"github.com/goliatone/go-landing/internal/render"
	"github.com/goliatone/go-landing/internal/widgets"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// Catalog exports the widget catalog type for consumers of the landing package.
type Catalog = widgets.Catalog

// WidgetDescriptor exports the widget descriptor DTO.
type WidgetDescriptor = interfaces.WidgetDescriptor

// ContentModel exports the parsing and transformation engine.
type ContentModel = core.ContentModel

// Segment exports one parsed unit of a landing document.
type Segment = core.Segment

// RenderedSegment exports one display-ready unit of the landing page.
type RenderedSegment = core.RenderedSegment

// EditSession exports the draft lifecycle tracker.
type EditSession = core.EditSession

// Template exports the frontmatter default-document template.
type Template = core.Template

// DocumentStore exports the persistence layer contract.
type DocumentStore = documents.Store

// RoleOwner is the only role allowed to edit a household landing page.
const RoleOwner = core.RoleOwner

// BuiltinKeys returns the enumerated widget keys in catalog order.
func BuiltinKeys() []string {
	return widgets.BuiltinCatalog().Keys()
}

// DefaultWidgetKeys returns the widgets seeded into a default landing page.
func DefaultWidgetKeys() []string {
	return widgets.DefaultKeys()
}

// Commands groups the command handlers exposed by the module.
type Commands struct {
	SaveDocument *landingcmd.SaveDocumentHandler
	MoveWidget   *landingcmd.MoveWidgetHandler
	InsertWidget *landingcmd.InsertWidgetHandler
}

// Option overrides a dependency the configuration alone cannot supply.
type Option func(*moduleDeps)

type moduleDeps struct {
	db         *bun.DB
	repo       documents.Repository
	cacheSvc   cache.CacheService
	serializer cache.KeySerializer
	logger     interfaces.Logger
	metrics    interfaces.LandingMetrics
	catalog    *widgets.Catalog
	template   *core.Template
}

// WithDB supplies the bun database handle used by the bun storage provider.
func WithDB(db *bun.DB) Option {
	return func(d *moduleDeps) { d.db = db }
}

// WithRepository replaces the document repository entirely, bypassing the
// storage provider selection.
func WithRepository(repo documents.Repository) Option {
	return func(d *moduleDeps) { d.repo = repo }
}

// WithRepositoryCache wires the read cache wrapped around the bun repository.
func WithRepositoryCache(svc cache.CacheService, serializer cache.KeySerializer) Option {
	return func(d *moduleDeps) {
		d.cacheSvc = svc
		d.serializer = serializer
	}
}

// WithLogger overrides the logger built from the logging configuration.
func WithLogger(logger interfaces.Logger) Option {
	return func(d *moduleDeps) { d.logger = logger }
}

// WithMetrics wires a metrics recorder. Defaults to a no-op recorder.
func WithMetrics(metrics interfaces.LandingMetrics) Option {
	return func(d *moduleDeps) { d.metrics = metrics }
}

// WithCatalog replaces the built-in widget catalog.
func WithCatalog(catalog *widgets.Catalog) Option {
	return func(d *moduleDeps) { d.catalog = catalog }
}

// WithDefaultTemplate overrides the default-document template, taking
// precedence over Config.Template.Path.
func WithDefaultTemplate(tpl *core.Template) Option {
	return func(d *moduleDeps) { d.template = tpl }
}

// Module is the top level landing-page runtime façade. It owns the widget
// catalog, the content model, rendering, persistence, and the command layer.
type Module struct {
	cfg         Config
	logger      interfaces.Logger
	catalog     *widgets.Catalog
	defaultKeys []string
	store       *documents.Store
	service     *core.Service
	commands    *Commands
}

// New constructs a landing module from the provided configuration and
// optional dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &moduleDeps{}
	for _, opt := range opts {
		opt(deps)
	}

	logger, err := buildLogger(cfg, deps)
	if err != nil {
		return nil, err
	}

	metrics := deps.metrics
	if metrics == nil {
		metrics = core.NoOpMetrics()
	}

	catalog := deps.catalog
	if catalog == nil {
		catalog = widgets.BuiltinCatalog()
	}

	defaultKeys := cfg.Widgets.DefaultKeys
	if len(defaultKeys) == 0 {
		defaultKeys = widgets.DefaultKeys()
	}

	template := deps.template
	if template == nil && cfg.Template.Path != "" {
		template, err = core.LoadTemplateFile(cfg.Template.Path)
		if err != nil {
			return nil, fmt.Errorf("landing: load default template: %w", err)
		}
	}

	repo, err := buildRepository(cfg, deps)
	if err != nil {
		return nil, err
	}
	store := documents.NewStore(repo, documents.WithLogger(logger))

	renderer := render.NewGoldmarkRenderer(render.Options{
		HardWraps:  cfg.Markdown.HardWraps,
		Unsafe:     cfg.Markdown.Unsafe,
		Extensions: cfg.Markdown.Extensions,
	})

	serviceOpts := []core.ServiceOption{
		core.WithRenderer(renderer),
		core.WithLogger(logger),
		core.WithMetrics(metrics),
	}
	if template != nil {
		serviceOpts = append(serviceOpts, core.WithDefaultTemplate(template))
	}
	service := core.NewService(catalog, serviceOpts...)

	m := &Module{
		cfg:         cfg,
		logger:      logger,
		catalog:     catalog,
		defaultKeys: defaultKeys,
		store:       store,
		service:     service,
	}

	if cfg.Features.Commands && cfg.Commands.Enabled {
		m.commands = m.buildCommands()
	}

	return m, nil
}

func buildLogger(cfg Config, deps *moduleDeps) (interfaces.Logger, error) {
	if deps.logger != nil {
		return deps.logger, nil
	}
	if !cfg.Features.Logger {
		return logging.NoOp(), nil
	}

	format := cfg.Logging.Format
	if cfg.Logging.Provider == "console" && format == "" {
		format = "console"
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
	if err != nil {
		return nil, err
	}
	return provider.GetLogger("landing"), nil
}

func buildRepository(cfg Config, deps *moduleDeps) (documents.Repository, error) {
	if deps.repo != nil {
		return deps.repo, nil
	}
	switch cfg.Storage.Provider {
	case "bun":
		if deps.db == nil {
			return nil, ErrDatabaseRequired
		}
		if cfg.Cache.Enabled && deps.cacheSvc != nil && deps.serializer != nil {
			return documents.NewBunRepositoryWithCache(deps.db, deps.cacheSvc, deps.serializer), nil
		}
		return documents.NewBunRepository(deps.db), nil
	default:
		return documents.NewMemoryRepository(), nil
	}
}

func (m *Module) buildCommands() *Commands {
	timeout := m.cfg.Commands.Timeout
	return &Commands{
		SaveDocument: landingcmd.NewSaveDocumentHandler(m.store, m.logger,
			commands.WithTimeout[landingcmd.SaveDocumentCommand](timeout)),
		MoveWidget: landingcmd.NewMoveWidgetHandler(m.store, m.service.Model(), m.logger,
			commands.WithTimeout[landingcmd.MoveWidgetCommand](timeout)),
		InsertWidget: landingcmd.NewInsertWidgetHandler(m.store, m.service.Model(), m.logger,
			commands.WithTimeout[landingcmd.InsertWidgetCommand](timeout)),
	}
}

// Catalog returns the configured widget catalog.
func (m *Module) Catalog() *widgets.Catalog {
	return m.catalog
}

// Model returns the content model for direct parsing and transformation.
func (m *Module) Model() *core.ContentModel {
	return m.service.Model()
}

// Documents returns the document store.
func (m *Module) Documents() *documents.Store {
	return m.store
}

// Service returns the landing service used for resolution and rendering.
func (m *Module) Service() *core.Service {
	return m.service
}

// Commands returns the command handlers, or nil when the command layer is disabled.
func (m *Module) Commands() *Commands {
	if m == nil {
		return nil
	}
	return m.commands
}

// Resolve loads the saved document for a household and returns the effective
// markdown, falling back to the default landing page when nothing is saved.
func (m *Module) Resolve(ctx context.Context, householdID uuid.UUID, householdName string) (string, error) {
	saved, err := m.store.GetContent(ctx, householdID)
	if err != nil {
		return "", err
	}
	if householdName == "" {
		householdName = m.cfg.Household.FallbackName
	}
	return m.service.Resolve(saved, householdName, m.defaultKeys), nil
}

// Render parses markdown and renders it into display-ready segments.
func (m *Module) Render(ctx context.Context, markdown string) ([]core.RenderedSegment, error) {
	return m.service.RenderSegments(ctx, markdown)
}

// MissingKeys lists the catalog widgets absent from the document, in catalog order.
func (m *Module) MissingKeys(markdown string) []string {
	return m.service.Model().MissingKeys(markdown)
}

// Edit opens an editing session over the household's effective document.
// Saves made through the session are stamped with the acting member.
func (m *Module) Edit(ctx context.Context, householdID, memberID uuid.UUID, role, householdName string) (*core.EditSession, error) {
	effective, err := m.Resolve(ctx, householdID, householdName)
	if err != nil {
		return nil, err
	}

	return m.service.BeginEdit(householdID.String(), role, effective,
		core.WithSessionSaver(m.store.Saver(memberID)))
}
