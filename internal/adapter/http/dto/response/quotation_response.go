package response

import (
	"time"

	"aga_techserv/internal/domain/entities"
)

type QuotationResponse struct {
	ID              string                   `json:"id"`
	ProjectID       string                   `json:"project_id"`
	EstimationID    string                   `json:"estimation_id"`
	QuotationNumber string                   `json:"quotation_number"`
	Items           []entities.QuotationItem `json:"items"`

	VATPercentage float64 `json:"vat_percentage"`
	Subtotal      float64 `json:"subtotal"`
	VATAmount     float64 `json:"vat_amount"`
	NetAmount     float64 `json:"net_amount"`

	IsApproved   bool   `json:"is_approved"`
	ApprovedByID string `json:"approved_by_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:              q.ID,
		ProjectID:       q.ProjectID,
		EstimationID:    q.EstimationID,
		QuotationNumber: q.QuotationNumber,
		Items:           q.Items,
		VATPercentage:   q.VATPercentage,
		Subtotal:        q.Subtotal,
		VATAmount:       q.VATAmount,
		NetAmount:       q.NetAmount,
		IsApproved:      q.IsApproved,
		ApprovedByID:    q.ApprovedByID,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}
