package response

import (
	"time"

	"aga_techserv/internal/domain/entities"
)

type EstimationResponse struct {
	ID               string                  `json:"id"`
	ProjectID        string                  `json:"project_id"`
	EstimationNumber string                  `json:"estimation_number"`
	Materials        []entities.MaterialItem `json:"materials"`
	Labour           []entities.LabourItem   `json:"labour"`
	Terms            []entities.TermItem     `json:"terms"`

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

func FromEstimation(e entities.Estimation) EstimationResponse {
	return EstimationResponse{
		ID:               e.ID,
		ProjectID:        e.ProjectID,
		EstimationNumber: e.EstimationNumber,
		Materials:        e.Materials,
		Labour:           e.Labour,
		Terms:            e.Terms,
		EstimatedAmount:  e.EstimatedAmount,
		QuotationAmount:  e.QuotationAmount,
		CommissionAmount: e.CommissionAmount,
		Profit:           e.Profit,
		IsChecked:        e.IsChecked,
		CheckedByID:      e.CheckedByID,
		CheckComment:     e.CheckComment,
		IsApproved:       e.IsApproved,
		ApprovedByID:     e.ApprovedByID,
		ApproveComment:   e.ApproveComment,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
