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
	ErrEstimationNotFound       = errors.New("estimation not found")
	ErrEstimationAlreadyExists  = errors.New("estimation already exists for this project")
	ErrInvalidEstimationID      = errors.New("invalid estimation id")
	ErrInvalidEstimationInput   = errors.New("invalid estimation input")
	ErrEstimationAlreadyChecked = errors.New("estimation already checked")
	ErrEstimationNotChecked     = errors.New("estimation must be checked before approval")
	ErrEstimationApproved       = errors.New("estimation already approved")
	ErrEstimationLocked         = errors.New("approved estimation cannot be modified or deleted")
)

// EstimationInput carries the caller-supplied line items. Totals in the
// input are ignored; the rollup calculator rederives them.
type EstimationInput struct {
	ProjectID        string
	Materials        []entities.MaterialItem
	Labour           []entities.LabourItem
	Terms            []entities.TermItem
	CommissionAmount float64
}

// IEstimationUseCase exposes estimation operations including the two-stage
// review gate (checked then approved).
type IEstimationUseCase interface {
	Create(ctx context.Context, actorID string, in EstimationInput) (entities.Estimation, error)
	Update(ctx context.Context, actorID, estimationID string, in EstimationInput) (entities.Estimation, error)
	Check(ctx context.Context, actorID, estimationID, comment string) (entities.Estimation, error)
	Approve(ctx context.Context, actorID, estimationID, comment string) (entities.Estimation, error)
	Reject(ctx context.Context, actorID, estimationID, comment string) (entities.Estimation, error)
	Delete(ctx context.Context, actorID, estimationID string) error
	GetByID(ctx context.Context, id string) (entities.Estimation, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Estimation, error)
}

type EstimationUseCase struct {
	estimations interfaces.IEstimationRepository
	projects    interfaces.IProjectRepository
	comments    interfaces.ICommentRepository
	graph       *workflow.Graph
	notifier    *Notifier
	log         *zap.Logger
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(
	estimations interfaces.IEstimationRepository,
	projects interfaces.IProjectRepository,
	comments interfaces.ICommentRepository,
	graph *workflow.Graph,
	notifier *Notifier,
	log *zap.Logger,
) *EstimationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimationUseCase{
		estimations: estimations,
		projects:    projects,
		comments:    comments,
		graph:       graph,
		notifier:    notifier,
		log:         log,
	}
}

func (u *EstimationUseCase) Create(ctx context.Context, actorID string, in EstimationInput) (entities.Estimation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Estimation{}, ErrMissingActor
	}
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.Estimation{}, ErrInvalidProjectID
	}
	if len(in.Materials) == 0 && len(in.Labour) == 0 && len(in.Terms) == 0 {
		return entities.Estimation{}, ErrInvalidEstimationInput
	}
	if err := validateEstimationItems(in); err != nil {
		return entities.Estimation{}, err
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if project.ID == "" {
		return entities.Estimation{}, ErrProjectNotFound
	}

	// Enforce: 1 estimation per project.
	if existing, err := u.estimations.GetByProjectID(ctx, projectID); err != nil {
		return entities.Estimation{}, err
	} else if existing.ID != "" {
		return entities.Estimation{}, ErrEstimationAlreadyExists
	}

	number, err := numbering.RelatedNumber(project.ProjectNumber, numbering.EstimationPrefix)
	if err != nil {
		return entities.Estimation{}, err
	}

	now := time.Now().UTC()
	e := entities.Estimation{
		ID:               uuid.NewString(),
		ProjectID:        project.ID,
		EstimationNumber: number,
		Materials:        in.Materials,
		Labour:           in.Labour,
		Terms:            in.Terms,
		CommissionAmount: in.CommissionAmount,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	e = finance.RecomputeEstimation(e)

	created, err := u.estimations.Create(ctx, e)
	if err != nil {
		return entities.Estimation{}, err
	}

	appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionGeneral,
		fmt.Sprintf("Estimation %s created, estimated amount %.2f.", created.EstimationNumber, created.EstimatedAmount), nil)
	u.log.Info("estimation created",
		zap.String("estimation_id", created.ID), zap.String("project_id", project.ID),
		zap.Float64("estimated_amount", created.EstimatedAmount))
	return created, nil
}

func (u *EstimationUseCase) Update(ctx context.Context, actorID, estimationID string, in EstimationInput) (entities.Estimation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Estimation{}, ErrMissingActor
	}
	e, err := u.loadEstimation(ctx, estimationID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.IsApproved {
		return entities.Estimation{}, ErrEstimationLocked
	}
	if len(in.Materials) == 0 && len(in.Labour) == 0 && len(in.Terms) == 0 {
		return entities.Estimation{}, ErrInvalidEstimationInput
	}
	if err := validateEstimationItems(in); err != nil {
		return entities.Estimation{}, err
	}

	e.Materials = in.Materials
	e.Labour = in.Labour
	e.Terms = in.Terms
	e.CommissionAmount = in.CommissionAmount
	e.UpdatedAt = time.Now().UTC()
	e = finance.RecomputeEstimation(e)

	return u.estimations.Update(ctx, e)
}

// Check is the first review gate. Re-checking an already-checked
// estimation is rejected.
func (u *EstimationUseCase) Check(ctx context.Context, actorID, estimationID, comment string) (entities.Estimation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Estimation{}, ErrMissingActor
	}
	e, err := u.loadEstimation(ctx, estimationID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.IsChecked {
		return entities.Estimation{}, ErrEstimationAlreadyChecked
	}

	e.IsChecked = true
	e.CheckedByID = strings.TrimSpace(actorID)
	e.CheckComment = strings.TrimSpace(comment)
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.estimations.Update(ctx, e)
	if err != nil {
		return entities.Estimation{}, err
	}

	project, _ := u.projects.GetByID(ctx, updated.ProjectID)
	appendAuditComment(ctx, u.comments, u.log, updated.ProjectID, actorID, entities.CommentActionCheck,
		checkNote(updated.EstimationNumber, comment), nil)
	if project.ID != "" {
		u.notifier.NotifyProject(ctx, project, "Estimation checked",
			fmt.Sprintf("Estimation %s passed the first review gate.", updated.EstimationNumber))
	}

	u.log.Info("estimation checked",
		zap.String("estimation_id", updated.ID), zap.String("checked_by", actorID))
	return updated, nil
}

// Approve is the second review gate. It requires a prior check, refuses
// repeats, and moves the owning project to estimation_prepared through the
// transition graph.
func (u *EstimationUseCase) Approve(ctx context.Context, actorID, estimationID, comment string) (entities.Estimation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Estimation{}, ErrMissingActor
	}
	e, err := u.loadEstimation(ctx, estimationID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.IsApproved {
		return entities.Estimation{}, ErrEstimationApproved
	}
	if !e.IsChecked {
		return entities.Estimation{}, ErrEstimationNotChecked
	}

	project, err := u.projects.GetByID(ctx, e.ProjectID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if project.ID == "" {
		return entities.Estimation{}, ErrProjectNotFound
	}
	if err := u.graph.Validate(project.Status, entities.ProjectStatusEstimationPrepared); err != nil {
		return entities.Estimation{}, err
	}

	e.IsApproved = true
	e.ApprovedByID = strings.TrimSpace(actorID)
	e.ApproveComment = strings.TrimSpace(comment)
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.estimations.Update(ctx, e)
	if err != nil {
		return entities.Estimation{}, err
	}

	project.Status = entities.ProjectStatusEstimationPrepared
	project.UpdatedAt = time.Now().UTC()
	project, err = u.projects.Update(ctx, project)
	if err != nil {
		return entities.Estimation{}, err
	}

	appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionApproval,
		fmt.Sprintf("Estimation %s approved.", updated.EstimationNumber), nil)
	u.notifier.NotifyProject(ctx, project, "Estimation approved",
		fmt.Sprintf("Estimation %s was approved; the project is ready for quotation.", updated.EstimationNumber))

	u.log.Info("estimation approved",
		zap.String("estimation_id", updated.ID), zap.String("approved_by", actorID))
	return updated, nil
}

// Reject refuses an estimation at the approval stage. The check flag is
// cleared so the document goes through both gates again after rework; the
// project stays in draft.
func (u *EstimationUseCase) Reject(ctx context.Context, actorID, estimationID, comment string) (entities.Estimation, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Estimation{}, ErrMissingActor
	}
	e, err := u.loadEstimation(ctx, estimationID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.IsApproved {
		return entities.Estimation{}, ErrEstimationApproved
	}
	if !e.IsChecked {
		return entities.Estimation{}, ErrEstimationNotChecked
	}

	e.IsChecked = false
	e.CheckedByID = ""
	e.CheckComment = ""
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.estimations.Update(ctx, e)
	if err != nil {
		return entities.Estimation{}, err
	}

	project, _ := u.projects.GetByID(ctx, updated.ProjectID)
	appendAuditComment(ctx, u.comments, u.log, updated.ProjectID, actorID, entities.CommentActionRejection,
		rejectNote(updated.EstimationNumber, comment), nil)
	if project.ID != "" {
		u.notifier.NotifyProject(ctx, project, "Estimation rejected",
			fmt.Sprintf("Estimation %s was rejected at approval and needs rework.", updated.EstimationNumber))
	}
	return updated, nil
}

func (u *EstimationUseCase) Delete(ctx context.Context, actorID, estimationID string) error {
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	e, err := u.loadEstimation(ctx, estimationID)
	if err != nil {
		return err
	}
	if e.IsApproved {
		return ErrEstimationLocked
	}
	return u.estimations.Delete(ctx, e.ID)
}

func (u *EstimationUseCase) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	return u.loadEstimation(ctx, id)
}

func (u *EstimationUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Estimation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Estimation{}, ErrInvalidProjectID
	}
	e, err := u.estimations.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.ID == "" {
		return entities.Estimation{}, ErrEstimationNotFound
	}
	return e, nil
}

func (u *EstimationUseCase) loadEstimation(ctx context.Context, id string) (entities.Estimation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimation{}, ErrInvalidEstimationID
	}
	e, err := u.estimations.GetByID(ctx, id)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.ID == "" {
		return entities.Estimation{}, ErrEstimationNotFound
	}
	return e, nil
}

func validateEstimationItems(in EstimationInput) error {
	for _, m := range in.Materials {
		if m.Quantity <= 0 || m.UnitPrice < 0 {
			return ErrInvalidEstimationInput
		}
	}
	for _, l := range in.Labour {
		if l.Days <= 0 || l.Price < 0 {
			return ErrInvalidEstimationInput
		}
	}
	for _, t := range in.Terms {
		if t.Quantity <= 0 || t.UnitPrice < 0 {
			return ErrInvalidEstimationInput
		}
	}
	if in.CommissionAmount < 0 {
		return ErrInvalidEstimationInput
	}
	return nil
}

func checkNote(number, comment string) string {
	base := fmt.Sprintf("Estimation %s checked.", number)
	if strings.TrimSpace(comment) != "" {
		return base + " " + strings.TrimSpace(comment)
	}
	return base
}

func rejectNote(number, comment string) string {
	base := fmt.Sprintf("Estimation %s rejected at approval.", number)
	if strings.TrimSpace(comment) != "" {
		return base + " " + strings.TrimSpace(comment)
	}
	return base
}
