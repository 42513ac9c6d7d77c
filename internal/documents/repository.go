package documents

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts landing document persistence so hosts can choose
// between the bun-backed implementation and the in-memory one.
type Repository interface {
	GetByHousehold(ctx context.Context, householdID uuid.UUID) (*Document, error)
	Upsert(ctx context.Context, doc *Document) (*Document, error)
	Delete(ctx context.Context, householdID uuid.UUID) error
}

// NewDocumentRepository creates the go-repository-bun repository for landing
// documents, keyed by household for identifier lookups.
func NewDocumentRepository(db *bun.DB) repository.Repository[*Document] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Document]{
		NewRecord:          func() *Document { return &Document{} },
		GetID:              func(doc *Document) uuid.UUID { return doc.ID },
		SetID:              func(doc *Document, id uuid.UUID) { doc.ID = id },
		GetIdentifier:      func() string { return "household_id" },
		GetIdentifierValue: func(doc *Document) string { return doc.HouseholdID.String() },
	})
}
