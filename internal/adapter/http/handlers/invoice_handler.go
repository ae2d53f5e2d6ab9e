package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "aga_techserv/internal/adapter/http/dto/request"
	response "aga_techserv/internal/adapter/http/dto/response"
	"aga_techserv/internal/domain/workflow"
	"aga_techserv/internal/usecase"
	"aga_techserv/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for the final invoice: issuing,
// settlement through the payment gateway, and the rendered PDF artifact.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice issues the final invoice for a project with an approved
// quotation and moves the project to final_invoice_sent.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), payload.ActorID, payload.ProjectID)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

// SettleInvoice forwards the raw provider payload to the payment gateway.
// The body is passed through untouched; the use case pins the amount and
// reference fields before it reaches the provider.
func (h *InvoiceHandler) SettleInvoice(c *gin.Context) {
	payload, err := readGatewayPayload(c)
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.SettleInvoice(c.Request.Context(), c.Query("actor_id"), c.Param("id"), payload)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// DownloadInvoice streams the rendered PDF artifact.
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	pdf, err := h.usecase.RenderAndArchive(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetInvoice returns one invoice by id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// GetInvoiceByProject returns the project's invoice.
func (h *InvoiceHandler) GetInvoiceByProject(c *gin.Context) {
	invoice, err := h.usecase.GetByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// readGatewayPayload returns the request body as a JSON object for the
// payment provider. An empty body becomes an empty object.
func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("body is not valid json")
	}
	return json.RawMessage(raw), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidPayload),
		errors.Is(err, usecase.ErrMissingActor), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotApproved):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_APPROVED", "Quotation must be approved before invoicing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvoiceNotPending):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PENDING", "Invoice is not pending settlement", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDenied):
		return pkg.NewDomainErrorSimple("PAYMENT_DENIED", "Payment was denied by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in current project status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
