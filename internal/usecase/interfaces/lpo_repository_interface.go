package interfaces

import (
	"context"

	"aga_techserv/internal/domain/entities"
)

// ILPORepository abstracts DynamoDB persistence for LPO.
type ILPORepository interface {
	Create(ctx context.Context, l entities.LPO) (entities.LPO, error)
	GetByID(ctx context.Context, id string) (entities.LPO, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.LPO, error)
	Update(ctx context.Context, l entities.LPO) (entities.LPO, error)
}
