package response

import (
	"time"

	"aga_techserv/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string  `json:"id"`
	ProjectID     string  `json:"project_id"`
	QuotationID   string  `json:"quotation_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"payment_status"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`

	IssuedAt  time.Time  `json:"issued_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                inv.ID,
		ProjectID:         inv.ProjectID,
		QuotationID:       inv.QuotationID,
		InvoiceNumber:     inv.InvoiceNumber,
		Amount:            inv.Amount,
		PaymentStatus:     string(inv.PaymentStatus),
		ProviderPaymentID: inv.ProviderPaymentID,
		IssuedAt:          inv.IssuedAt,
		PaidAt:            inv.PaidAt,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}
