package entities

import "time"

// ExpenseItem is a material or miscellaneous cost line on an expense report.
type ExpenseItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// LaborDetail is one team member's labor cost row. DaysPresent comes from
// the external attendance collaborator, never from the request payload.
type LaborDetail struct {
	UserID      string  `json:"user_id"`
	DailyRate   float64 `json:"daily_rate"`
	DaysPresent int     `json:"days_present"`
	Total       float64 `json:"total"`
}

// Expense aggregates a project's actual costs: materials, miscellaneous
// spend and the recomputed labor block. One active record per project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type Expense struct {
	ID            string        `json:"id"`
	ProjectID     string        `json:"project_id"`
	Materials     []ExpenseItem `json:"materials"`
	Miscellaneous []ExpenseItem `json:"miscellaneous"`
	LaborDetails  []LaborDetail `json:"labor_details"`

	TotalMaterialCost      float64 `json:"total_material_cost"`
	TotalMiscellaneousCost float64 `json:"total_miscellaneous_cost"`
	TotalLaborCost         float64 `json:"total_labor_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
