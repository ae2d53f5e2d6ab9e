package request

import (
	"aga_techserv/internal/domain/entities"
)

type MaterialItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

type LabourItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Days        float64 `json:"days" binding:"required"`
	Price       float64 `json:"price"`
}

type TermItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// EstimationRequest carries the costed lines for an internal estimation.
// Line totals are ignored; the server rederives every derived amount.
type EstimationRequest struct {
	ActorID          string                `json:"actor_id" binding:"required"`
	ProjectID        string                `json:"project_id"`
	Materials        []MaterialItemRequest `json:"materials"`
	Labour           []LabourItemRequest   `json:"labour"`
	Terms            []TermItemRequest     `json:"terms"`
	CommissionAmount float64               `json:"commission_amount"`
}

func (r EstimationRequest) ResolveMaterials() []entities.MaterialItem {
	items := make([]entities.MaterialItem, 0, len(r.Materials))
	for _, m := range r.Materials {
		items = append(items, entities.MaterialItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice})
	}
	return items
}

func (r EstimationRequest) ResolveLabour() []entities.LabourItem {
	items := make([]entities.LabourItem, 0, len(r.Labour))
	for _, l := range r.Labour {
		items = append(items, entities.LabourItem{Description: l.Description, Days: l.Days, Price: l.Price})
	}
	return items
}

func (r EstimationRequest) ResolveTerms() []entities.TermItem {
	items := make([]entities.TermItem, 0, len(r.Terms))
	for _, t := range r.Terms {
		items = append(items, entities.TermItem{Description: t.Description, Quantity: t.Quantity, UnitPrice: t.UnitPrice})
	}
	return items
}

// ReviewRequest is shared by the check/approve/reject endpoints of the
// estimation review gate and the quotation decision endpoints.
type ReviewRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Comment string `json:"comment"`
}
