package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository on top of go-repository-bun with
// optional read caching.
type BunRepository struct {
	repo repository.Repository[*Document]
	db   *bun.DB
}

// NewBunRepository creates a document repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a document repository with caching.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewDocumentRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base, db: db}
}

func (r *BunRepository) GetByHousehold(ctx context.Context, householdID uuid.UUID) (*Document, error) {
	record, err := r.repo.GetByIdentifier(ctx, householdID.String())
	if err != nil {
		return nil, mapRepositoryError(err, "landing_document", householdID.String())
	}
	return record, nil
}

func (r *BunRepository) Upsert(ctx context.Context, doc *Document) (*Document, error) {
	existing, err := r.repo.GetByIdentifier(ctx, doc.HouseholdID.String())
	if err != nil {
		if !goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, fmt.Errorf("landing_document repository error: %w", err)
		}

		created := cloneDocument(doc)
		if created.ID == uuid.Nil {
			created.ID = uuid.New()
		}
		record, err := r.repo.Create(ctx, created)
		if err != nil {
			return nil, fmt.Errorf("landing_document repository error: %w", err)
		}
		return record, nil
	}

	existing.Content = doc.Content
	existing.UpdatedBy = doc.UpdatedBy
	existing.UpdatedAt = time.Now().UTC()
	record, err := r.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("landing_document repository error: %w", err)
	}
	return record, nil
}

func (r *BunRepository) Delete(ctx context.Context, householdID uuid.UUID) error {
	record, err := r.GetByHousehold(ctx, householdID)
	if err != nil {
		return err
	}
	if err := r.repo.Delete(ctx, &Document{ID: record.ID}); err != nil {
		return fmt.Errorf("landing_document repository error: %w", err)
	}
	return nil
}

// CreateTables prepares the landing document schema. Intended for embedded
// setups and tests; production deployments run their own migrations.
func (r *BunRepository) CreateTables(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*Document)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

var _ Repository = (*BunRepository)(nil)
