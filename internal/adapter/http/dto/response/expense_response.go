package response

import (
	"time"

	"aga_techserv/internal/domain/entities"
)

type ExpenseResponse struct {
	ID            string                 `json:"id"`
	ProjectID     string                 `json:"project_id"`
	Materials     []entities.ExpenseItem `json:"materials"`
	Miscellaneous []entities.ExpenseItem `json:"miscellaneous"`
	LaborDetails  []entities.LaborDetail `json:"labor_details"`

	TotalMaterialCost      float64 `json:"total_material_cost"`
	TotalMiscellaneousCost float64 `json:"total_miscellaneous_cost"`
	TotalLaborCost         float64 `json:"total_labor_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                     e.ID,
		ProjectID:              e.ProjectID,
		Materials:              e.Materials,
		Miscellaneous:          e.Miscellaneous,
		LaborDetails:           e.LaborDetails,
		TotalMaterialCost:      e.TotalMaterialCost,
		TotalMiscellaneousCost: e.TotalMiscellaneousCost,
		TotalLaborCost:         e.TotalLaborCost,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}
