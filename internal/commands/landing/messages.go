package landingcmd

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	saveDocumentMessageType = "landing.save_document"
	moveWidgetMessageType   = "landing.move_widget"
	insertWidgetMessageType = "landing.insert_widget"
)

var keyPattern = regexp.MustCompile(`^[a-z-]+$`)

// SaveDocumentCommand persists a household's landing markdown. Markdown may
// be empty: saving an empty document reverts the household to the default
// landing page.
type SaveDocumentCommand struct {
	// HouseholdID selects the household whose landing document is replaced.
	HouseholdID uuid.UUID `json:"household_id"`
	// MemberID records who performed the save.
	MemberID uuid.UUID `json:"member_id"`
	// Markdown is the canonical document, already converted from any editor form.
	Markdown string `json:"markdown"`
}

// Type implements command.Message.
func (SaveDocumentCommand) Type() string { return saveDocumentMessageType }

// Validate ensures the target household is present before handlers execute.
func (cmd SaveDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.HouseholdID, validation.By(requireUUID("landing.save_document.household_required"))),
	)
}

// MoveWidgetCommand reorders a widget in the persisted landing document by
// widget order. Out-of-range indices leave the document untouched, matching
// the content model's silent-failure policy.
type MoveWidgetCommand struct {
	HouseholdID uuid.UUID `json:"household_id"`
	MemberID    uuid.UUID `json:"member_id"`
	FromIndex   int       `json:"from_index"`
	ToIndex     int       `json:"to_index"`
}

// Type implements command.Message.
func (MoveWidgetCommand) Type() string { return moveWidgetMessageType }

// Validate rejects negative indices early; range checks against the actual
// widget count happen inside the content model.
func (cmd MoveWidgetCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.HouseholdID, validation.By(requireUUID("landing.move_widget.household_required"))),
		validation.Field(&cmd.FromIndex, validation.Min(0)),
		validation.Field(&cmd.ToIndex, validation.Min(0)),
	)
}

// InsertWidgetCommand appends a widget token to the persisted document.
type InsertWidgetCommand struct {
	HouseholdID uuid.UUID `json:"household_id"`
	MemberID    uuid.UUID `json:"member_id"`
	Key         string    `json:"key"`
}

// Type implements command.Message.
func (InsertWidgetCommand) Type() string { return insertWidgetMessageType }

// Validate ensures the key is present and shaped like a widget key.
func (cmd InsertWidgetCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.HouseholdID, validation.By(requireUUID("landing.insert_widget.household_required"))),
		validation.Field(&cmd.Key, validation.Required, validation.Match(keyPattern)),
	)
}

func requireUUID(code string) validation.RuleFunc {
	return func(value any) error {
		id, ok := value.(uuid.UUID)
		if !ok || id == uuid.Nil {
			return validation.NewError(code, "household id is required")
		}
		return nil
	}
}
