package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/domain/finance"
	"aga_techserv/internal/domain/numbering"
	"aga_techserv/internal/domain/workflow"
	"aga_techserv/internal/usecase/interfaces"
)

var (
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrQuotationAlreadyExists = errors.New("quotation already exists for this project")
	ErrInvalidQuotationID     = errors.New("invalid quotation id")
	ErrInvalidQuotationInput  = errors.New("invalid quotation input")
	ErrQuotationApproved      = errors.New("quotation already approved")
	ErrQuotationLocked        = errors.New("approved quotation cannot be modified or deleted")
	ErrEstimationNotApproved  = errors.New("estimation must be approved before quoting")
)

// QuotationInput carries the caller-supplied quotation lines. Totals are
// ignored and rederived.
type QuotationInput struct {
	ProjectID     string
	VATPercentage float64
	Items         []entities.QuotationItem
}

// IQuotationUseCase exposes quotation operations including its single-stage
// approval gate.
type IQuotationUseCase interface {
	Create(ctx context.Context, actorID string, in QuotationInput) (entities.Quotation, error)
	Update(ctx context.Context, actorID, quotationID string, in QuotationInput) (entities.Quotation, error)
	Approve(ctx context.Context, actorID, quotationID string) (entities.Quotation, error)
	Reject(ctx context.Context, actorID, quotationID, comment string) (entities.Quotation, error)
	Delete(ctx context.Context, actorID, quotationID string) error
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	quotations  interfaces.IQuotationRepository
	estimations interfaces.IEstimationRepository
	projects    interfaces.IProjectRepository
	comments    interfaces.ICommentRepository
	graph       *workflow.Graph
	notifier    *Notifier
	log         *zap.Logger
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	quotations interfaces.IQuotationRepository,
	estimations interfaces.IEstimationRepository,
	projects interfaces.IProjectRepository,
	comments interfaces.ICommentRepository,
	graph *workflow.Graph,
	notifier *Notifier,
	log *zap.Logger,
) *QuotationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuotationUseCase{
		quotations:  quotations,
		estimations: estimations,
		projects:    projects,
		comments:    comments,
		graph:       graph,
		notifier:    notifier,
		log:         log,
	}
}

// Create issues the client-facing quotation and moves the project to
// quotation_sent. The quotation's net amount is recorded back onto the
// estimation so its profit can be derived.
func (u *QuotationUseCase) Create(ctx context.Context, actorID string, in QuotationInput) (entities.Quotation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Quotation{}, ErrMissingActor
	}
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.Quotation{}, ErrInvalidProjectID
	}
	if len(in.Items) == 0 || in.VATPercentage < 0 {
		return entities.Quotation{}, ErrInvalidQuotationInput
	}
	if err := validateQuotationItems(in.Items); err != nil {
		return entities.Quotation{}, err
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if project.ID == "" {
		return entities.Quotation{}, ErrProjectNotFound
	}

	estimation, err := u.estimations.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if estimation.ID == "" {
		return entities.Quotation{}, ErrEstimationNotFound
	}
	if !estimation.IsApproved {
		return entities.Quotation{}, ErrEstimationNotApproved
	}

	// Enforce: 1 quotation per project.
	if existing, err := u.quotations.GetByProjectID(ctx, projectID); err != nil {
		return entities.Quotation{}, err
	} else if existing.ID != "" {
		return entities.Quotation{}, ErrQuotationAlreadyExists
	}

	if err := u.graph.Validate(project.Status, entities.ProjectStatusQuotationSent); err != nil {
		return entities.Quotation{}, err
	}

	number, err := numbering.RelatedNumber(project.ProjectNumber, numbering.QuotationPrefix)
	if err != nil {
		return entities.Quotation{}, err
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:              uuid.NewString(),
		ProjectID:       project.ID,
		EstimationID:    estimation.ID,
		QuotationNumber: number,
		Items:           in.Items,
		VATPercentage:   in.VATPercentage,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	q = finance.RecomputeQuotation(q)

	created, err := u.quotations.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	if err := u.syncEstimationQuotationAmount(ctx, estimation, created.NetAmount); err != nil {
		return entities.Quotation{}, err
	}

	project.Status = entities.ProjectStatusQuotationSent
	project.UpdatedAt = time.Now().UTC()
	project, err = u.projects.Update(ctx, project)
	if err != nil {
		return entities.Quotation{}, err
	}

	appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionGeneral,
		fmt.Sprintf("Quotation %s sent, net amount %.2f.", created.QuotationNumber, created.NetAmount), nil)
	u.notifier.NotifyProject(ctx, project, "Quotation sent",
		fmt.Sprintf("Quotation %s has been issued to the client.", created.QuotationNumber))

	u.log.Info("quotation created",
		zap.String("quotation_id", created.ID), zap.String("project_id", project.ID),
		zap.Float64("net_amount", created.NetAmount))
	return created, nil
}

func (u *QuotationUseCase) Update(ctx context.Context, actorID, quotationID string, in QuotationInput) (entities.Quotation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Quotation{}, ErrMissingActor
	}
	q, err := u.loadQuotation(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.IsApproved {
		return entities.Quotation{}, ErrQuotationLocked
	}
	if len(in.Items) == 0 || in.VATPercentage < 0 {
		return entities.Quotation{}, ErrInvalidQuotationInput
	}
	if err := validateQuotationItems(in.Items); err != nil {
		return entities.Quotation{}, err
	}

	q.Items = in.Items
	q.VATPercentage = in.VATPercentage
	q.UpdatedAt = time.Now().UTC()
	q = finance.RecomputeQuotation(q)

	updated, err := u.quotations.Update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	if estimation, err := u.estimations.GetByID(ctx, updated.EstimationID); err == nil && estimation.ID != "" {
		if err := u.syncEstimationQuotationAmount(ctx, estimation, updated.NetAmount); err != nil {
			return entities.Quotation{}, err
		}
	}
	return updated, nil
}

// Approve is the quotation's single-stage gate; there is no checked
// prerequisite. The project moves quotation_sent -> quotation_approved.
func (u *QuotationUseCase) Approve(ctx context.Context, actorID, quotationID string) (entities.Quotation, error) {
	return u.decide(ctx, actorID, quotationID, true, "")
}

// Reject declines the quotation and moves the project to
// quotation_rejected.
func (u *QuotationUseCase) Reject(ctx context.Context, actorID, quotationID, comment string) (entities.Quotation, error) {
	return u.decide(ctx, actorID, quotationID, false, comment)
}

func (u *QuotationUseCase) decide(ctx context.Context, actorID, quotationID string, approve bool, comment string) (entities.Quotation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Quotation{}, ErrMissingActor
	}
	q, err := u.loadQuotation(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.IsApproved {
		return entities.Quotation{}, ErrQuotationApproved
	}

	project, err := u.projects.GetByID(ctx, q.ProjectID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if project.ID == "" {
		return entities.Quotation{}, ErrProjectNotFound
	}

	target := entities.ProjectStatusQuotationApproved
	if !approve {
		target = entities.ProjectStatusQuotationRejected
	}
	if err := u.graph.Validate(project.Status, target); err != nil {
		return entities.Quotation{}, err
	}

	if approve {
		q.IsApproved = true
		q.ApprovedByID = strings.TrimSpace(actorID)
	}
	q.UpdatedAt = time.Now().UTC()

	updated, err := u.quotations.Update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	project.Status = target
	project.UpdatedAt = time.Now().UTC()
	project, err = u.projects.Update(ctx, project)
	if err != nil {
		return entities.Quotation{}, err
	}

	if approve {
		appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionApproval,
			fmt.Sprintf("Quotation %s approved by client.", updated.QuotationNumber), nil)
		u.notifier.NotifyProject(ctx, project, "Quotation approved",
			fmt.Sprintf("Quotation %s was approved; awaiting the client's LPO.", updated.QuotationNumber))
	} else {
		appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionRejection,
			quotationRejectNote(updated.QuotationNumber, comment), nil)
		u.notifier.NotifyProject(ctx, project, "Quotation rejected",
			fmt.Sprintf("Quotation %s was rejected by the client.", updated.QuotationNumber))
	}

	u.log.Info("quotation decision recorded",
		zap.String("quotation_id", updated.ID), zap.Bool("approved", approve))
	return updated, nil
}

func (u *QuotationUseCase) Delete(ctx context.Context, actorID, quotationID string) error {
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	q, err := u.loadQuotation(ctx, quotationID)
	if err != nil {
		return err
	}
	if q.IsApproved {
		return ErrQuotationLocked
	}
	return u.quotations.Delete(ctx, q.ID)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.loadQuotation(ctx, id)
}

func (u *QuotationUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Quotation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quotation{}, ErrInvalidProjectID
	}
	q, err := u.quotations.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) loadQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) syncEstimationQuotationAmount(ctx context.Context, estimation entities.Estimation, netAmount float64) error {
	estimation.QuotationAmount = &netAmount
	estimation.UpdatedAt = time.Now().UTC()
	estimation = finance.RecomputeEstimation(estimation)
	_, err := u.estimations.Update(ctx, estimation)
	return err
}

func validateQuotationItems(items []entities.QuotationItem) error {
	for _, it := range items {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return ErrInvalidQuotationInput
		}
	}
	return nil
}

func quotationRejectNote(number, comment string) string {
	base := fmt.Sprintf("Quotation %s rejected.", number)
	if strings.TrimSpace(comment) != "" {
		return base + " " + strings.TrimSpace(comment)
	}
	return base
}
