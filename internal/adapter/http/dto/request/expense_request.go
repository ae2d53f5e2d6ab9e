package request

import (
	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase"
)

type ExpenseItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

type LaborRateRequest struct {
	UserID    string  `json:"user_id" binding:"required"`
	DailyRate float64 `json:"daily_rate"`
}

// ExpenseRequest records the project expense report. Days present are not
// accepted from callers; the server pulls them from attendance.
type ExpenseRequest struct {
	ActorID       string               `json:"actor_id" binding:"required"`
	ProjectID     string               `json:"project_id" binding:"required"`
	Materials     []ExpenseItemRequest `json:"materials"`
	Miscellaneous []ExpenseItemRequest `json:"miscellaneous"`
	LaborRates    []LaborRateRequest   `json:"labor_rates"`
}

func (r ExpenseRequest) ResolveInput() usecase.ExpenseInput {
	materials := make([]entities.ExpenseItem, 0, len(r.Materials))
	for _, m := range r.Materials {
		materials = append(materials, entities.ExpenseItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice})
	}
	misc := make([]entities.ExpenseItem, 0, len(r.Miscellaneous))
	for _, m := range r.Miscellaneous {
		misc = append(misc, entities.ExpenseItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice})
	}
	rates := make([]usecase.LaborRateInput, 0, len(r.LaborRates))
	for _, l := range r.LaborRates {
		rates = append(rates, usecase.LaborRateInput{UserID: l.UserID, DailyRate: l.DailyRate})
	}

	return usecase.ExpenseInput{
		ProjectID:     r.ProjectID,
		Materials:     materials,
		Miscellaneous: misc,
		LaborRates:    rates,
	}
}
