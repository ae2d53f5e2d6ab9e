package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase/interfaces"
)

// appendAuditComment writes an append-only activity entry. Audit writes are
// best-effort side effects of an already-persisted operation: a failure is
// logged, never returned.
func appendAuditComment(
	ctx context.Context,
	comments interfaces.ICommentRepository,
	log *zap.Logger,
	projectID, actorID string,
	action entities.CommentActionType,
	content string,
	progress *int,
) {
	if comments == nil {
		return
	}
	c := entities.Comment{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		ActorID:    actorID,
		Content:    content,
		ActionType: action,
		Progress:   progress,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := comments.Create(ctx, c); err != nil && log != nil {
		log.Warn("audit comment write failed",
			zap.String("project_id", projectID), zap.String("action", string(action)), zap.Error(err))
	}
}
