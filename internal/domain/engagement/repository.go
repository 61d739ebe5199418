package engagement

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists the append-only interaction log
type Repository interface {
	Append(ctx context.Context, interaction *Interaction) error
	FindByUser(ctx context.Context, userID string, limit int) ([]Interaction, error)
	CountByProduct(ctx context.Context, productID uuid.UUID, kind Kind) (int64, error)
}
