package entities

import (
	"encoding/json"
	"time"
)

// InvoicePaymentStatus represents the settlement outcome of a final invoice.
type InvoicePaymentStatus string

const (
	InvoicePaymentPending  InvoicePaymentStatus = "pending"
	InvoicePaymentApproved InvoicePaymentStatus = "approved"
	InvoicePaymentDenied   InvoicePaymentStatus = "denied"
)

// Invoice is the final invoice issued at client handover. Its amount is the
// approved quotation's net amount and its number derives from the project
// number (INV + numeric suffix).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Gateway payload:
//   - ProviderPayloadRaw keeps the original settlement response (JSON) for
//     traceability/audit.
type Invoice struct {
	ID            string               `json:"id"`
	ProjectID     string               `json:"project_id"`
	QuotationID   string               `json:"quotation_id"`
	InvoiceNumber string               `json:"invoice_number"`
	Amount        float64              `json:"amount"`
	PaymentStatus InvoicePaymentStatus `json:"payment_status"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	IssuedAt  time.Time  `json:"issued_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
