package interfaces

import (
	"context"

	"aga_techserv/internal/domain/entities"
)

// ICommentRepository abstracts DynamoDB persistence for the append-only
// Comment activity log. There is deliberately no update or delete.
type ICommentRepository interface {
	Create(ctx context.Context, c entities.Comment) (entities.Comment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Comment, error)
}
