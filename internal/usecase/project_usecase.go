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
	"aga_techserv/internal/domain/numbering"
	"aga_techserv/internal/domain/workflow"
	"aga_techserv/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProjectInput = errors.New("invalid project input")
	ErrInvalidProjectID    = errors.New("invalid project id")
	ErrMissingActor        = errors.New("missing acting user id")
	ErrProjectNotDeletable = errors.New("project can only be deleted in draft")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 100")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongUserRole       = errors.New("user does not have the required role")
	ErrWrongProjectStatus  = errors.New("operation not allowed in current project status")
)

// CreateProjectInput carries the caller-supplied fields for a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	ClientID    string
	Location    string
	Building    string
	Apartment   string
}

// WorkDatesInput carries optional date updates; nil fields are untouched.
type WorkDatesInput struct {
	WorkStartDate      *time.Time
	WorkEndDate        *time.Time
	WorkCompletionDate *time.Time
	HandoverDate       *time.Time
	AcceptanceDate     *time.Time
	GRNNumber          string
}

// IProjectUseCase exposes the project lifecycle operations.
//
// Every status mutation goes through the transition graph; an absent edge
// aborts the operation before any write.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, actorID string, in CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateStatus(ctx context.Context, actorID, projectID string, next entities.ProjectStatus, note string) (entities.Project, error)
	AssignTeamAndDriver(ctx context.Context, actorID, projectID, engineerID string, workerIDs []string, driverID string) (entities.Project, error)
	UpdateProgress(ctx context.Context, actorID, projectID string, progress int, note string) (entities.Project, error)
	SetWorkDates(ctx context.Context, actorID, projectID string, in WorkDatesInput) (entities.Project, error)
	DeleteProject(ctx context.Context, actorID, projectID string) error
	ListActivity(ctx context.Context, projectID string) ([]entities.Comment, error)
}

type ProjectUseCase struct {
	projects  interfaces.IProjectRepository
	sequences interfaces.ISequenceRepository
	users     interfaces.IUserRepository
	comments  interfaces.ICommentRepository
	graph     *workflow.Graph
	notifier  *Notifier
	log       *zap.Logger
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	sequences interfaces.ISequenceRepository,
	users interfaces.IUserRepository,
	comments interfaces.ICommentRepository,
	graph *workflow.Graph,
	notifier *Notifier,
	log *zap.Logger,
) *ProjectUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectUseCase{
		projects:  projects,
		sequences: sequences,
		users:     users,
		comments:  comments,
		graph:     graph,
		notifier:  notifier,
		log:       log,
	}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, actorID string, in CreateProjectInput) (entities.Project, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Project{}, ErrMissingActor
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}

	now := time.Now().UTC()
	seq, err := u.sequences.NextProjectSequence(ctx, now.Year())
	if err != nil {
		u.log.Error("sequence reservation failed", zap.Error(err))
		return entities.Project{}, err
	}

	p := entities.Project{
		ID:            uuid.NewString(),
		ProjectNumber: numbering.ProjectNumber(now, seq),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		ClientID:      strings.TrimSpace(in.ClientID),
		Location:      in.Location,
		Building:      in.Building,
		Apartment:     in.Apartment,
		Status:        entities.ProjectStatusDraft,
		Progress:      0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.projects.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	u.log.Info("project created",
		zap.String("project_id", created.ID), zap.String("project_number", created.ProjectNumber))
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return u.loadProject(ctx, id)
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, actorID, projectID string, next entities.ProjectStatus, note string) (entities.Project, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Project{}, ErrMissingActor
	}
	p, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	if err := u.graph.Validate(p.Status, next); err != nil {
		return entities.Project{}, err
	}

	previous := p.Status
	p.Status = next
	p = applyStatusSideEffects(p, next, time.Now().UTC())

	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	u.appendComment(ctx, updated.ID, actorID, entities.CommentActionGeneral,
		statusChangeNote(previous, next, note), nil)
	u.notifier.NotifyProject(ctx, updated, "Project status updated",
		fmt.Sprintf("Status moved from %s to %s.", previous, next))

	u.log.Info("project status updated",
		zap.String("project_id", updated.ID),
		zap.String("from", string(previous)), zap.String("to", string(next)))
	return updated, nil
}

func (u *ProjectUseCase) AssignTeamAndDriver(ctx context.Context, actorID, projectID, engineerID string, workerIDs []string, driverID string) (entities.Project, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Project{}, ErrMissingActor
	}
	p, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Status != entities.ProjectStatusLPOReceived {
		return entities.Project{}, fmt.Errorf("%w: team assignment requires %s, current %s",
			ErrWrongProjectStatus, entities.ProjectStatusLPOReceived, p.Status)
	}
	if len(workerIDs) == 0 || strings.TrimSpace(driverID) == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}

	if engineerID = strings.TrimSpace(engineerID); engineerID != "" {
		if err := u.requireRole(ctx, engineerID, entities.UserRoleEngineer); err != nil {
			return entities.Project{}, err
		}
	}
	for _, workerID := range workerIDs {
		if err := u.requireRole(ctx, workerID, entities.UserRoleWorker); err != nil {
			return entities.Project{}, err
		}
	}
	if err := u.requireRole(ctx, driverID, entities.UserRoleDriver); err != nil {
		return entities.Project{}, err
	}

	if err := u.graph.Validate(p.Status, entities.ProjectStatusTeamAssigned); err != nil {
		return entities.Project{}, err
	}

	if engineerID != "" {
		p.EngineerID = engineerID
	}
	p.WorkerIDs = workerIDs
	p.DriverID = strings.TrimSpace(driverID)
	p.Status = entities.ProjectStatusTeamAssigned
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	u.appendComment(ctx, updated.ID, actorID, entities.CommentActionGeneral,
		fmt.Sprintf("Team assigned: %d workers, driver %s.", len(workerIDs), updated.DriverID), nil)
	u.notifier.NotifyProject(ctx, updated, "Team assigned",
		"The execution team and driver have been assigned.")
	return updated, nil
}

func (u *ProjectUseCase) UpdateProgress(ctx context.Context, actorID, projectID string, progress int, note string) (entities.Project, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Project{}, ErrMissingActor
	}
	if progress < 0 || progress > 100 {
		return entities.Project{}, ErrInvalidProgress
	}
	p, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	// Progress milestones request their status through the graph rather
	// than assigning the field directly.
	target := progressTarget(p.Status, progress)
	previous := p.Status
	if target != "" && target != p.Status {
		if err := u.graph.Validate(p.Status, target); err != nil {
			return entities.Project{}, err
		}
		p.Status = target
		p = applyStatusSideEffects(p, target, time.Now().UTC())
	}

	p.Progress = progress
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	u.appendComment(ctx, updated.ID, actorID, entities.CommentActionProgressUpdate,
		progressNote(progress, note), &progress)
	if updated.Status != previous {
		u.notifier.NotifyProject(ctx, updated, "Project progress updated",
			fmt.Sprintf("Progress is now %d%%; status moved to %s.", progress, updated.Status))
	}

	u.log.Info("project progress updated",
		zap.String("project_id", updated.ID), zap.Int("progress", progress),
		zap.String("status", string(updated.Status)))
	return updated, nil
}

func (u *ProjectUseCase) SetWorkDates(ctx context.Context, actorID, projectID string, in WorkDatesInput) (entities.Project, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.Project{}, ErrMissingActor
	}
	p, err := u.loadProject(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	if in.WorkStartDate != nil {
		p.WorkStartDate = in.WorkStartDate
	}
	if in.WorkEndDate != nil {
		p.WorkEndDate = in.WorkEndDate
	}
	if in.WorkCompletionDate != nil {
		p.WorkCompletionDate = in.WorkCompletionDate
	}
	if in.HandoverDate != nil {
		p.HandoverDate = in.HandoverDate
	}
	if in.AcceptanceDate != nil {
		p.AcceptanceDate = in.AcceptanceDate
	}
	if strings.TrimSpace(in.GRNNumber) != "" {
		p.GRNNumber = strings.TrimSpace(in.GRNNumber)
	}
	p.UpdatedAt = time.Now().UTC()

	return u.projects.Update(ctx, p)
}

func (u *ProjectUseCase) DeleteProject(ctx context.Context, actorID, projectID string) error {
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	p, err := u.loadProject(ctx, projectID)
	if err != nil {
		return err
	}
	if p.Status != entities.ProjectStatusDraft {
		return ErrProjectNotDeletable
	}
	return u.projects.Delete(ctx, p.ID)
}

func (u *ProjectUseCase) ListActivity(ctx context.Context, projectID string) ([]entities.Comment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.comments.ListByProjectID(ctx, projectID)
}

func (u *ProjectUseCase) loadProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) requireRole(ctx context.Context, userID string, role entities.UserRole) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidProjectInput
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if usr.ID == "" {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if usr.Role != role {
		return fmt.Errorf("%w: %s is %s, expected %s", ErrWrongUserRole, userID, usr.Role, role)
	}
	return nil
}

// appendComment writes an audit entry; like notifications it must never
// fail the primary operation, so errors are only logged.
func (u *ProjectUseCase) appendComment(ctx context.Context, projectID, actorID string, action entities.CommentActionType, content string, progress *int) {
	appendAuditComment(ctx, u.comments, u.log, projectID, actorID, action, content, progress)
}

func applyStatusSideEffects(p entities.Project, next entities.ProjectStatus, now time.Time) entities.Project {
	switch next {
	case entities.ProjectStatusWorkStarted:
		if p.WorkStartDate == nil {
			p.WorkStartDate = &now
		}
	case entities.ProjectStatusWorkCompleted:
		if p.WorkCompletionDate == nil {
			p.WorkCompletionDate = &now
		}
		if p.WorkCompletionNumber == "" {
			if wcp, err := numbering.RelatedNumber(p.ProjectNumber, numbering.WorkCompletionPrefix); err == nil {
				p.WorkCompletionNumber = wcp
			}
		}
	case entities.ProjectStatusClientHandover:
		if p.HandoverDate == nil {
			p.HandoverDate = &now
		}
	}
	p.UpdatedAt = now
	return p
}

// progressTarget maps a progress milestone to the status it should request.
// An empty result means no transition is needed.
func progressTarget(current entities.ProjectStatus, progress int) entities.ProjectStatus {
	switch {
	case progress == 100:
		if current == entities.ProjectStatusWorkCompleted {
			return ""
		}
		return entities.ProjectStatusWorkCompleted
	case progress == 0:
		if current == entities.ProjectStatusTeamAssigned {
			return entities.ProjectStatusWorkStarted
		}
		return ""
	default:
		// The first progress report starts the work; subsequent ones move
		// execution into in_progress.
		if current == entities.ProjectStatusTeamAssigned {
			return entities.ProjectStatusWorkStarted
		}
		if current == entities.ProjectStatusWorkStarted {
			return entities.ProjectStatusInProgress
		}
		return ""
	}
}

func statusChangeNote(from, to entities.ProjectStatus, note string) string {
	base := fmt.Sprintf("Status changed from %s to %s.", from, to)
	if strings.TrimSpace(note) != "" {
		return base + " " + strings.TrimSpace(note)
	}
	return base
}

func progressNote(progress int, note string) string {
	base := fmt.Sprintf("Progress updated to %d%%.", progress)
	if strings.TrimSpace(note) != "" {
		return base + " " + strings.TrimSpace(note)
	}
	return base
}
