package request

import (
	"aga_techserv/internal/domain/entities"
)

type LPOItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// LPORequest records the client's local purchase order for a project.
type LPORequest struct {
	ActorID   string           `json:"actor_id" binding:"required"`
	ProjectID string           `json:"project_id" binding:"required"`
	Supplier  string           `json:"supplier"`
	Items     []LPOItemRequest `json:"items"`
}

func (r LPORequest) ResolveItems() []entities.LPOItem {
	items := make([]entities.LPOItem, 0, len(r.Items))
	for _, i := range r.Items {
		items = append(items, entities.LPOItem{Description: i.Description, Quantity: i.Quantity, UnitPrice: i.UnitPrice})
	}
	return items
}
