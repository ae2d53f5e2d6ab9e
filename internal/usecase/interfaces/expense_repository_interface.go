package interfaces

import (
	"context"

	"aga_techserv/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense.
type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
}
