package documents

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Document stores the landing markdown for one household. Content persists
// exactly as authored; the empty string means "never customized" and callers
// fall back to the default document at render time.
type Document struct {
	bun.BaseModel `bun:"table:landing_documents,alias:ldoc"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	HouseholdID uuid.UUID `bun:"household_id,notnull,unique,type:uuid" json:"household_id"`
	Content     string    `bun:"content,notnull,default:''" json:"content"`
	UpdatedBy   uuid.UUID `bun:"updated_by,type:uuid" json:"updated_by"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func cloneDocument(doc *Document) *Document {
	if doc == nil {
		return nil
	}
	cloned := *doc
	return &cloned
}
