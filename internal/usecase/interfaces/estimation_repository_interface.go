package interfaces

import (
	"context"

	"aga_techserv/internal/domain/entities"
)

// IEstimationRepository abstracts DynamoDB persistence for Estimation.
//
// The workflow engine must be able to:
//   - create the single estimation a project owns
//   - load it by its own id or by the owning project id
//   - rewrite it after recomputation or review-flag changes
//   - delete it while still unapproved
type IEstimationRepository interface {
	Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	GetByID(ctx context.Context, id string) (entities.Estimation, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Estimation, error)
	Update(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	Delete(ctx context.Context, id string) error
}
