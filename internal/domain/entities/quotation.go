package entities

import "time"

// QuotationItem is a client-facing priced line.
type QuotationItem struct {
	Description string  `json:"description"`
	UOM         string  `json:"uom"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	ImageKey    string  `json:"image_key,omitempty"`
}

// Quotation is the client-facing priced proposal for a project. At most one
// exists per project and it references the project's estimation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Derived fields (always recomputed before persisting):
//   - Subtotal  = sum of item totals
//   - VATAmount = Subtotal * VATPercentage / 100, rounded to 2dp
//   - NetAmount = Subtotal + VATAmount
type Quotation struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	EstimationID    string          `json:"estimation_id"`
	QuotationNumber string          `json:"quotation_number"`
	Items           []QuotationItem `json:"items"`

	VATPercentage float64 `json:"vat_percentage"`
	Subtotal      float64 `json:"subtotal"`
	VATAmount     float64 `json:"vat_amount"`
	NetAmount     float64 `json:"net_amount"`

	IsApproved   bool   `json:"is_approved"`
	ApprovedByID string `json:"approved_by_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
