package interfaces

import (
	"context"

	"aga_techserv/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User. The workflow
// engine only reads users: role validation on team assignment and
// recipient resolution for notifications.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
}
