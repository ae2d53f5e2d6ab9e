package request

import (
	"aga_techserv/internal/domain/entities"
)

type QuotationItemRequest struct {
	Description string  `json:"description" binding:"required"`
	UOM         string  `json:"uom"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	ImageKey    string  `json:"image_key"`
}

// QuotationRequest carries the client-facing priced lines. Subtotal, VAT
// and net amounts are always rederived server-side.
type QuotationRequest struct {
	ActorID       string                 `json:"actor_id" binding:"required"`
	ProjectID     string                 `json:"project_id"`
	VATPercentage float64                `json:"vat_percentage"`
	Items         []QuotationItemRequest `json:"items"`
}

func (r QuotationRequest) ResolveItems() []entities.QuotationItem {
	items := make([]entities.QuotationItem, 0, len(r.Items))
	for _, i := range r.Items {
		items = append(items, entities.QuotationItem{
			Description: i.Description,
			UOM:         i.UOM,
			Quantity:    i.Quantity,
			UnitPrice:   i.UnitPrice,
			ImageKey:    i.ImageKey,
		})
	}
	return items
}
