package entities

import "time"

// CommentActionType tags an activity-log entry with the workflow action
// that produced it.
type CommentActionType string

const (
	CommentActionApproval       CommentActionType = "approval"
	CommentActionRejection      CommentActionType = "rejection"
	CommentActionCheck          CommentActionType = "check"
	CommentActionGeneral        CommentActionType = "general"
	CommentActionProgressUpdate CommentActionType = "progress_update"
)

// Comment is an append-only audit record. Every gated transition writes
// one; none is ever mutated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type Comment struct {
	ID         string            `json:"id"`
	ProjectID  string            `json:"project_id"`
	ActorID    string            `json:"actor_id"`
	Content    string            `json:"content"`
	ActionType CommentActionType `json:"action_type"`
	Progress   *int              `json:"progress,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
