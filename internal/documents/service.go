package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

// Store exposes household-scoped access to landing documents on top of a
// Repository. Absence is normalized: a household without a saved document
// reads as a nil content pointer, never as an error.
type Store struct {
	repo   Repository
	logger interfaces.Logger
}

// StoreOption customises store behaviour.
type StoreOption func(*Store)

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore constructs a document store over the supplied repository.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	store := &Store{
		repo:   repo,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// GetContent loads the saved markdown for a household. A missing document
// returns nil, signalling "absent" to the effective-content resolver.
func (s *Store) GetContent(ctx context.Context, householdID uuid.UUID) (*string, error) {
	record, err := s.repo.GetByHousehold(ctx, householdID)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("documents: load landing document: %w", err)
	}
	return &record.Content, nil
}

// SaveContent upserts the markdown for a household.
func (s *Store) SaveContent(ctx context.Context, householdID uuid.UUID, markdown string, updatedBy uuid.UUID) (*Document, error) {
	record, err := s.repo.Upsert(ctx, &Document{
		HouseholdID: householdID,
		Content:     markdown,
		UpdatedBy:   updatedBy,
	})
	if err != nil {
		logging.WithFields(s.logger, map[string]any{
			"household": householdID,
			"error":     err,
		}).Error("documents.store.save_failed")
		return nil, fmt.Errorf("documents: save landing document: %w", err)
	}

	logging.WithFields(s.logger, map[string]any{
		"household": householdID,
		"bytes":     len(markdown),
	}).Debug("documents.store.save_succeeded")
	return record, nil
}

// Delete removes the saved document so the household falls back to the
// default landing page.
func (s *Store) Delete(ctx context.Context, householdID uuid.UUID) error {
	if err := s.repo.Delete(ctx, householdID); err != nil {
		return fmt.Errorf("documents: delete landing document: %w", err)
	}
	return nil
}

// Saver adapts the store to the landing service's persistence callback,
// stamping every save with the acting member.
func (s *Store) Saver(updatedBy uuid.UUID) interfaces.Saver {
	return func(ctx context.Context, householdID string, markdown string) error {
		id, err := uuid.Parse(householdID)
		if err != nil {
			return fmt.Errorf("documents: invalid household id %q: %w", householdID, err)
		}
		_, err = s.SaveContent(ctx, id, markdown, updatedBy)
		return err
	}
}
