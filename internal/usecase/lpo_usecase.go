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
	"aga_techserv/internal/usecase/interfaces"
)

var (
	ErrLPONotFound      = errors.New("lpo not found")
	ErrLPOAlreadyExists = errors.New("lpo already exists for this project")
	ErrInvalidLPOID     = errors.New("invalid lpo id")
	ErrInvalidLPOInput  = errors.New("invalid lpo input")
)

// LPOInput carries the purchase order fields. Totals are rederived.
type LPOInput struct {
	ProjectID string
	Supplier  string
	Items     []entities.LPOItem
}

// ILPOUseCase exposes purchase-order operations. Recording an LPO is only
// legal while the project status is exactly quotation_sent.
type ILPOUseCase interface {
	Create(ctx context.Context, actorID string, in LPOInput) (entities.LPO, error)
	UploadDocument(ctx context.Context, actorID, lpoID, filename string, body []byte, contentType string) (entities.LPO, error)
	DeleteDocument(ctx context.Context, actorID, lpoID, key string) (entities.LPO, error)
	GetByID(ctx context.Context, id string) (entities.LPO, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.LPO, error)
}

type LPOUseCase struct {
	lpos     interfaces.ILPORepository
	projects interfaces.IProjectRepository
	comments interfaces.ICommentRepository
	storage  interfaces.IObjectStorage
	notifier *Notifier
	log      *zap.Logger
}

var _ ILPOUseCase = (*LPOUseCase)(nil)

func NewLPOUseCase(
	lpos interfaces.ILPORepository,
	projects interfaces.IProjectRepository,
	comments interfaces.ICommentRepository,
	storage interfaces.IObjectStorage,
	notifier *Notifier,
	log *zap.Logger,
) *LPOUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &LPOUseCase{
		lpos:     lpos,
		projects: projects,
		comments: comments,
		storage:  storage,
		notifier: notifier,
		log:      log,
	}
}

func (u *LPOUseCase) Create(ctx context.Context, actorID string, in LPOInput) (entities.LPO, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.LPO{}, ErrMissingActor
	}
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.LPO{}, ErrInvalidProjectID
	}
	if strings.TrimSpace(in.Supplier) == "" || len(in.Items) == 0 {
		return entities.LPO{}, ErrInvalidLPOInput
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.LPO{}, ErrInvalidLPOInput
		}
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.LPO{}, err
	}
	if project.ID == "" {
		return entities.LPO{}, ErrProjectNotFound
	}
	if project.Status != entities.ProjectStatusQuotationSent {
		return entities.LPO{}, fmt.Errorf("%w: lpo requires %s, current %s",
			ErrWrongProjectStatus, entities.ProjectStatusQuotationSent, project.Status)
	}

	// Enforce: 1 lpo per project.
	if existing, err := u.lpos.GetByProjectID(ctx, projectID); err != nil {
		return entities.LPO{}, err
	} else if existing.ID != "" {
		return entities.LPO{}, ErrLPOAlreadyExists
	}

	now := time.Now().UTC()
	l := entities.LPO{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		Supplier:  strings.TrimSpace(in.Supplier),
		Items:     in.Items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l = finance.RecomputeLPO(l)

	created, err := u.lpos.Create(ctx, l)
	if err != nil {
		return entities.LPO{}, err
	}

	appendAuditComment(ctx, u.comments, u.log, project.ID, actorID, entities.CommentActionGeneral,
		fmt.Sprintf("LPO received from %s, total %.2f.", created.Supplier, created.TotalAmount), nil)
	u.notifier.NotifyProject(ctx, project, "LPO received",
		fmt.Sprintf("Purchase order received from %s.", created.Supplier))

	u.log.Info("lpo created",
		zap.String("lpo_id", created.ID), zap.String("project_id", project.ID),
		zap.Float64("total_amount", created.TotalAmount))
	return created, nil
}

// UploadDocument stores an LPO scan under an opaque key and records the key
// on the order.
func (u *LPOUseCase) UploadDocument(ctx context.Context, actorID, lpoID, filename string, body []byte, contentType string) (entities.LPO, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.LPO{}, ErrMissingActor
	}
	if strings.TrimSpace(filename) == "" || len(body) == 0 {
		return entities.LPO{}, ErrInvalidLPOInput
	}
	l, err := u.loadLPO(ctx, lpoID)
	if err != nil {
		return entities.LPO{}, err
	}

	key := fmt.Sprintf("lpo/%s/%s-%s", l.ID, uuid.NewString(), strings.TrimSpace(filename))
	if err := u.storage.Upload(ctx, key, body, contentType); err != nil {
		return entities.LPO{}, err
	}

	l.DocumentKeys = append(l.DocumentKeys, key)
	l.UpdatedAt = time.Now().UTC()
	return u.lpos.Update(ctx, l)
}

func (u *LPOUseCase) DeleteDocument(ctx context.Context, actorID, lpoID, key string) (entities.LPO, error) {
	if strings.TrimSpace(actorID) == "" {
		return entities.LPO{}, ErrMissingActor
	}
	l, err := u.loadLPO(ctx, lpoID)
	if err != nil {
		return entities.LPO{}, err
	}

	idx := -1
	for i, k := range l.DocumentKeys {
		if k == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.LPO{}, ErrInvalidLPOInput
	}

	if err := u.storage.Delete(ctx, key); err != nil {
		return entities.LPO{}, err
	}

	l.DocumentKeys = append(l.DocumentKeys[:idx], l.DocumentKeys[idx+1:]...)
	l.UpdatedAt = time.Now().UTC()
	return u.lpos.Update(ctx, l)
}

func (u *LPOUseCase) GetByID(ctx context.Context, id string) (entities.LPO, error) {
	return u.loadLPO(ctx, id)
}

func (u *LPOUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.LPO, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.LPO{}, ErrInvalidProjectID
	}
	l, err := u.lpos.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.LPO{}, err
	}
	if l.ID == "" {
		return entities.LPO{}, ErrLPONotFound
	}
	return l, nil
}

func (u *LPOUseCase) loadLPO(ctx context.Context, id string) (entities.LPO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LPO{}, ErrInvalidLPOID
	}
	l, err := u.lpos.GetByID(ctx, id)
	if err != nil {
		return entities.LPO{}, err
	}
	if l.ID == "" {
		return entities.LPO{}, ErrLPONotFound
	}
	return l, nil
}
