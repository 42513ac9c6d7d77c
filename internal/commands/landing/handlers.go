package landingcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/landing"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const (
	saveOperation   = "landing.save_document"
	moveOperation   = "landing.move_widget"
	insertOperation = "landing.insert_widget"
)

var (
	_ command.Commander[SaveDocumentCommand] = (*SaveDocumentHandler)(nil)
	_ command.Commander[MoveWidgetCommand]   = (*MoveWidgetHandler)(nil)
	_ command.Commander[InsertWidgetCommand] = (*InsertWidgetHandler)(nil)
)

// SaveDocumentHandler persists landing markdown through the document store.
type SaveDocumentHandler struct {
	inner *commands.Handler[SaveDocumentCommand]
}

// NewSaveDocumentHandler creates a handler bound to the supplied store.
func NewSaveDocumentHandler(store *documents.Store, logger interfaces.Logger, opts ...commands.HandlerOption[SaveDocumentCommand]) *SaveDocumentHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SaveDocumentCommand) error {
		_, err := store.SaveContent(ctx, msg.HouseholdID, msg.Markdown, msg.MemberID)
		return err
	}

	handlerOpts := append([]commands.HandlerOption[SaveDocumentCommand]{
		commands.WithLogger[SaveDocumentCommand](baseLogger),
		commands.WithOperation[SaveDocumentCommand](saveOperation),
	}, opts...)

	return &SaveDocumentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *SaveDocumentHandler) Execute(ctx context.Context, msg SaveDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// MoveWidgetHandler applies a widget reorder to the persisted document.
type MoveWidgetHandler struct {
	inner *commands.Handler[MoveWidgetCommand]
}

// NewMoveWidgetHandler creates a handler over the store and content model.
func NewMoveWidgetHandler(store *documents.Store, model *landing.ContentModel, logger interfaces.Logger, opts ...commands.HandlerOption[MoveWidgetCommand]) *MoveWidgetHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg MoveWidgetCommand) error {
		saved, err := store.GetContent(ctx, msg.HouseholdID)
		if err != nil {
			return err
		}
		current := landing.NormalizeContent(saved)
		moved := model.MoveWidget(current, msg.FromIndex, msg.ToIndex)
		if moved == current {
			// Nothing changed: either a no-op request or out-of-range indices.
			return nil
		}
		_, err = store.SaveContent(ctx, msg.HouseholdID, moved, msg.MemberID)
		return err
	}

	handlerOpts := append([]commands.HandlerOption[MoveWidgetCommand]{
		commands.WithLogger[MoveWidgetCommand](baseLogger),
		commands.WithOperation[MoveWidgetCommand](moveOperation),
	}, opts...)

	return &MoveWidgetHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *MoveWidgetHandler) Execute(ctx context.Context, msg MoveWidgetCommand) error {
	return h.inner.Execute(ctx, msg)
}

// InsertWidgetHandler appends a widget token to the persisted document.
type InsertWidgetHandler struct {
	inner *commands.Handler[InsertWidgetCommand]
}

// NewInsertWidgetHandler creates a handler over the store and content model.
func NewInsertWidgetHandler(store *documents.Store, model *landing.ContentModel, logger interfaces.Logger, opts ...commands.HandlerOption[InsertWidgetCommand]) *InsertWidgetHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg InsertWidgetCommand) error {
		saved, err := store.GetContent(ctx, msg.HouseholdID)
		if err != nil {
			return err
		}
		current := landing.NormalizeContent(saved)
		inserted := model.InsertWidget(current, msg.Key)
		if inserted == current {
			return nil
		}
		_, err = store.SaveContent(ctx, msg.HouseholdID, inserted, msg.MemberID)
		return err
	}

	handlerOpts := append([]commands.HandlerOption[InsertWidgetCommand]{
		commands.WithLogger[InsertWidgetCommand](baseLogger),
		commands.WithOperation[InsertWidgetCommand](insertOperation),
	}, opts...)

	return &InsertWidgetHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *InsertWidgetHandler) Execute(ctx context.Context, msg InsertWidgetCommand) error {
	return h.inner.Execute(ctx, msg)
}
