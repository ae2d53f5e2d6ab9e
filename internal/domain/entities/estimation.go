package entities

import "time"

// MaterialItem is a costed material line on an estimation.
type MaterialItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// LabourItem is a labour line on an estimation; days times daily price.
type LabourItem struct {
	Description string  `json:"description"`
	Days        float64 `json:"days"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// TermItem covers contractual/miscellaneous costed terms on an estimation.
type TermItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Estimation is the internal costed draft prepared before a client-facing
// quotation. At most one exists per project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Review gates:
//   - IsChecked then IsApproved, strictly in that order.
//   - An approved estimation can no longer be deleted.
//
// Derived fields (never trusted from callers, always recomputed):
//   - EstimatedAmount = materials + labour + terms totals
//   - Profit = QuotationAmount - EstimatedAmount - CommissionAmount,
//     only once QuotationAmount is recorded.
type Estimation struct {
	ID               string         `json:"id"`
	ProjectID        string         `json:"project_id"`
	EstimationNumber string         `json:"estimation_number"`
	Materials        []MaterialItem `json:"materials"`
	Labour           []LabourItem   `json:"labour"`
	Terms            []TermItem     `json:"terms"`

	EstimatedAmount  float64  `json:"estimated_amount"`
	QuotationAmount  *float64 `json:"quotation_amount,omitempty"`
	CommissionAmount float64  `json:"commission_amount"`
	Profit           *float64 `json:"profit,omitempty"`

	IsChecked    bool   `json:"is_checked"`
	CheckedByID  string `json:"checked_by_id,omitempty"`
	CheckComment string `json:"check_comment,omitempty"`

	IsApproved     bool   `json:"is_approved"`
	ApprovedByID   string `json:"approved_by_id,omitempty"`
	ApproveComment string `json:"approve_comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
