package request

// CreateInvoiceRequest issues the final invoice for a project whose
// quotation has been approved.
type CreateInvoiceRequest struct {
	ActorID   string `json:"actor_id" binding:"required"`
	ProjectID string `json:"project_id" binding:"required"`
}
