package documents

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an in-memory document repository, used by
// tests and embedded setups that do not need durable storage.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byHousehold: make(map[uuid.UUID]*Document),
	}
}

type memoryRepository struct {
	mu          sync.RWMutex
	byHousehold map[uuid.UUID]*Document
}

func (m *memoryRepository) GetByHousehold(_ context.Context, householdID uuid.UUID) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byHousehold[householdID]
	if !ok {
		return nil, &NotFoundError{Resource: "landing_document", Key: householdID.String()}
	}
	return cloneDocument(record), nil
}

func (m *memoryRepository) Upsert(_ context.Context, doc *Document) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := m.byHousehold[doc.HouseholdID]; ok {
		existing.Content = doc.Content
		existing.UpdatedBy = doc.UpdatedBy
		existing.UpdatedAt = now
		return cloneDocument(existing), nil
	}

	created := cloneDocument(doc)
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	m.byHousehold[created.HouseholdID] = created
	return cloneDocument(created), nil
}

func (m *memoryRepository) Delete(_ context.Context, householdID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byHousehold[householdID]; !ok {
		return &NotFoundError{Resource: "landing_document", Key: householdID.String()}
	}
	delete(m.byHousehold, householdID)
	return nil
}
