package engagement

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// Kind classifies a user interaction with a product
type Kind string

const (
	KindLike Kind = "like"
	KindSave Kind = "save"
	KindHave Kind = "have"
	KindBuy  Kind = "buy"
	KindView Kind = "view"
)

// IsValid reports whether k is one of the recognized interaction kinds
func (k Kind) IsValid() bool {
	switch k {
	case KindLike, KindSave, KindHave, KindBuy, KindView:
		return true
	}
	return false
}

// Interaction is one append-only engagement log entry. Rows are never
// updated or deleted by this service.
type Interaction struct {
	shared.OwnedAggregateRoot
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      Kind      `gorm:"type:varchar(20);not null;index"`
	Payload   string    `gorm:"type:jsonb"` // opaque structured value, stored verbatim
}

// TableName returns the table name for GORM
func (Interaction) TableName() string {
	return "user_interactions"
}

// NewInteraction creates an interaction log entry. payload may be nil.
func NewInteraction(userID string, productID uuid.UUID, kind Kind, payload json.RawMessage) (*Interaction, error) {
	if userID == "" {
		return nil, shared.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown interaction type")
	}
	i := &Interaction{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ProductID:          productID,
		Kind:               kind,
	}
	if len(payload) > 0 {
		if !json.Valid(payload) {
			return nil, shared.NewDomainError("INVALID_PAYLOAD", "Interaction payload must be valid JSON")
		}
		i.Payload = string(payload)
	}
	return i, nil
}
