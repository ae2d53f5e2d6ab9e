package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/numbering"
	"aga_techserv/internal/domain/workflow"
	"aga_techserv/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for this project")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvoiceNotPending    = errors.New("invoice is not pending settlement")
	ErrInvalidPayload       = errors.New("invalid payment payload")
	ErrQuotationNotApproved = errors.New("quotation must be approved before invoicing")
	ErrPaymentDenied        = errors.New("payment was denied by the provider")
)

// IInvoiceUseCase exposes the final invoice: issuing it at client handover,
// settling it through the payment gateway, and rendering the PDF artifact.
type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, actorID, projectID string) (entities.Invoice, error)
	SettleInvoice(ctx context.Context, actorID, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
	RenderAndArchive(ctx context.Context, invoiceID string) ([]byte, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	invoices   interfaces.IInvoiceRepository
	quotations interfaces.IQuotationRepository
	projects   interfaces.IProjectRepository
	comments   interfaces.ICommentRepository
	gateway    interfaces.IPaymentGateway
	renderer   interfaces.IDocumentRenderer
	storage    interfaces.IObjectStorage
	graph      *workflow.Graph
	notifier   *Notifier
	log        *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	quotations interfaces.IQuotationRepository,
	projects interfaces.IProjectRepository,
	comments interfaces.ICommentRepository,
	gateway interfaces.IPaymentGateway,
	renderer interfaces.IDocumentRenderer,
	storage interfaces.IObjectStorage,
	graph *workflow.Graph,
	notifier *Notifier,
	log *zap.Logger,
) *InvoiceUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceUseCase{
		invoices:   invoices,
		quotations: quotations,
		projects:   projects,
		comments:   comments,
		gateway:    gateway,
		renderer:   renderer,
		storage:    storage,
		graph:      graph,
		notifier:   notifier,
		log:        log,
	}
}

// CreateInvoice issues the final invoice for the approved quotation amount
// and moves the project client_handover -> final_invoice_sent.
func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, actorID, projectID string) (entities.Invoice, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Invoice{}, ErrMissingActor
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Invoice{}, ErrInvalidProjectID
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if project.ID == "" {
		return entities.Invoice{}, ErrProjectNotFound
	}

	quotation, err := u.quotations.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if quotation.ID == "" {
		return entities.Invoice{}, ErrQuotationNotFound
	}
	if !quotation.IsApproved {
		return entities.Invoice{}, ErrQuotationNotApproved
	}

	if existing, err := u.invoices.GetByProjectID(ctx, projectID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	if err := u.graph.Validate(project.Status, entities.ProjectStatusFinalInvoiceSent); err != nil {
		return entities.Invoice{}, err
	}

	number, err := numbering.InvoiceNumber(project.ProjectNumber)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		ProjectID:     project.ID,
		QuotationID:   quotation.ID,
		InvoiceNumber: number,
		Amount:        quotation.NetAmount,
		PaymentStatus: entities.InvoicePaymentPending,
		IssuedAt:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	project.Status = entities.ProjectStatusFinalInvoiceSent
	project.UpdatedAt = time.Now().UTC()
	project, err = u.projects.Update(ctx, project)
	if err != nil {
		return entities.Invoice{}, err
	}

	appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionGeneral,
		fmt.Sprintf("Invoice %s issued for %.2f.", created.InvoiceNumber, created.Amount), nil)
	u.notifier.NotifyProject(ctx, project, "Final invoice sent",
		fmt.Sprintf("Invoice %s for %.2f has been issued.", created.InvoiceNumber, created.Amount))

	u.log.Info("invoice created",
		zap.String("invoice_id", created.ID), zap.String("project_id", project.ID),
		zap.Float64("amount", created.Amount))
	return created, nil
}

// SettleInvoice processes the client's payment through the external
// gateway. The source of truth for the amount is the invoice in the store;
// the caller payload only carries provider-specific fields.
func (u *InvoiceUseCase) SettleInvoice(ctx context.Context, actorID, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Invoice{}, ErrMissingActor
	}
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.PaymentStatus != entities.InvoicePaymentPending {
		return entities.Invoice{}, ErrInvoiceNotPending
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Invoice{}, ErrInvalidPayload
	}
	if u.gateway == nil {
		return entities.Invoice{}, errors.New("payment gateway not configured")
	}

	// Link the provider payment back to the invoice and pin the amount.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inv.InvoiceNumber
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
		}
		reqMap["transaction_amount"] = inv.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	u.log.Info("invoice settlement start",
		zap.String("invoice_id", inv.ID), zap.Float64("amount", inv.Amount))
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Error("payment gateway failed",
			zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv.ProviderPaymentID = providerPaymentID
	inv.ProviderPayloadRaw = providerResp
	inv.UpdatedAt = now

	if providerStatus != "approved" {
		inv.PaymentStatus = entities.InvoicePaymentDenied
		if _, err := u.invoices.Update(ctx, inv); err != nil {
			return entities.Invoice{}, err
		}
		return entities.Invoice{}, ErrPaymentDenied
	}

	inv.PaymentStatus = entities.InvoicePaymentApproved
	inv.PaidAt = &now

	updated, err := u.invoices.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	project, err := u.projects.GetByID(ctx, updated.ProjectID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if project.ID != "" {
		if err := u.graph.Validate(project.Status, entities.ProjectStatusPaymentReceived); err != nil {
			return entities.Invoice{}, err
		}
		project.Status = entities.ProjectStatusPaymentReceived
		project.UpdatedAt = time.Now().UTC()
		project, err = u.projects.Update(ctx, project)
		if err != nil {
			return entities.Invoice{}, err
		}

		appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionApproval,
			fmt.Sprintf("Payment received for invoice %s.", updated.InvoiceNumber), nil)
		u.notifier.NotifyProject(ctx, project, "Payment received",
			fmt.Sprintf("Invoice %s has been settled.", updated.InvoiceNumber))
	}

	u.log.Info("invoice settled",
		zap.String("invoice_id", updated.ID),
		zap.String("provider_payment_id", providerPaymentID))
	return updated, nil
}

// RenderAndArchive produces the invoice PDF and stores a copy under
// invoices/{number}.pdf. The archival upload is best-effort; the artifact
// is returned either way.
func (u *InvoiceUseCase) RenderAndArchive(ctx context.Context, invoiceID string) ([]byte, error) {
	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if u.renderer == nil {
		return nil, errors.New("document renderer not configured")
	}

	project, err := u.projects.GetByID(ctx, inv.ProjectID)
	if err != nil {
		return nil, err
	}

	pdf, err := u.renderer.RenderHTML(ctx, invoiceHTML(inv, project))
	if err != nil {
		return nil, err
	}

	if u.storage != nil {
		key := fmt.Sprintf("invoices/%s.pdf", inv.InvoiceNumber)
		if err := u.storage.Upload(ctx, key, pdf, "application/pdf"); err != nil {
			u.log.Warn("invoice archive upload failed",
				zap.String("invoice_id", inv.ID), zap.String("key", key), zap.Error(err))
		}
	}
	return pdf, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return u.loadInvoice(ctx, id)
}

func (u *InvoiceUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Invoice, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Invoice{}, ErrInvalidProjectID
	}
	inv, err := u.invoices.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) loadInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func invoiceHTML(inv entities.Invoice, project entities.Project) string {
	return fmt.Sprintf(`<html><body>
<h1>Invoice %s</h1>
<p>Project: %s (%s)</p>
<p>Location: %s %s %s</p>
<p>Amount due: %.2f</p>
<p>Issued: %s</p>
</body></html>`,
		inv.InvoiceNumber,
		project.Name, project.ProjectNumber,
		project.Location, project.Building, project.Apartment,
		inv.Amount,
		inv.IssuedAt.Format("2006-01-02"))
}
