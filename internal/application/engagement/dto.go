package engagement

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/engagement"
)

// RecordRequest logs one interaction with a product
type RecordRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Kind      string          `json:"interaction_type" binding:"required,interaction_kind"`
	Payload   json.RawMessage `json:"interaction_data"`
}

// InteractionResponse represents a logged interaction in API responses
type InteractionResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Kind      string          `json:"interaction_type"`
	Payload   json.RawMessage `json:"interaction_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func toInteractionResponse(i *engagement.Interaction) InteractionResponse {
	resp := InteractionResponse{
		ID:        i.ID,
		ProductID: i.ProductID,
		Kind:      string(i.Kind),
		CreatedAt: i.CreatedAt,
	}
	if i.Payload != "" {
		resp.Payload = json.RawMessage(i.Payload)
	}
	return resp
}
