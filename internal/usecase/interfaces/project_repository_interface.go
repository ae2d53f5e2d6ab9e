package interfaces

import (
	"context"

	"aga_techserv/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Repositories follow the zero-value convention: a lookup miss returns the
// zero entity with a nil error, and callers test the ID field.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByProjectNumber(ctx context.Context, number string) (entities.Project, error)
	ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

// ISequenceRepository reserves project sequence numbers. Each call must be
// an atomic reservation so concurrent creations never share a number.
type ISequenceRepository interface {
	NextProjectSequence(ctx context.Context, year int) (int64, error)
}
