package entities

import "time"

// LPOItem is an ordered line on a purchase order.
type LPOItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// LPO is the client's Local Purchase Order, received after the quotation
// goes out. At most one exists per project and it may only be recorded
// while the project status is exactly quotation_sent.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// DocumentKeys are opaque object-storage keys for the uploaded LPO scans.
type LPO struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Supplier     string    `json:"supplier"`
	Items        []LPOItem `json:"items"`
	TotalAmount  float64   `json:"total_amount"`
	DocumentKeys []string  `json:"document_keys,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
