package response

import (
	"time"

	"aga_techserv/internal/domain/entities"
)

type LPOResponse struct {
	ID           string             `json:"id"`
	ProjectID    string             `json:"project_id"`
	Supplier     string             `json:"supplier"`
	Items        []entities.LPOItem `json:"items"`
	TotalAmount  float64            `json:"total_amount"`
	DocumentKeys []string           `json:"document_keys,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromLPO(l entities.LPO) LPOResponse {
	return LPOResponse{
		ID:           l.ID,
		ProjectID:    l.ProjectID,
		Supplier:     l.Supplier,
		Items:        l.Items,
		TotalAmount:  l.TotalAmount,
		DocumentKeys: l.DocumentKeys,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
