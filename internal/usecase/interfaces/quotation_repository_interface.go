package interfaces

import (
	"context"

	"aga_techserv/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}
