package response

import (
	"time"

	"aga_techserv/internal/domain/entities"
)

type ProjectResponse struct {
	ID            string `json:"id"`
	ProjectNumber string `json:"project_number"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ClientID      string `json:"client_id,omitempty"`
	Location      string `json:"location,omitempty"`
	Building      string `json:"building,omitempty"`
	Apartment     string `json:"apartment,omitempty"`
	Status        string `json:"status"`
	Progress      int    `json:"progress"`

	EngineerID string   `json:"engineer_id,omitempty"`
	WorkerIDs  []string `json:"worker_ids,omitempty"`
	DriverID   string   `json:"driver_id,omitempty"`

	WorkStartDate        *time.Time `json:"work_start_date,omitempty"`
	WorkEndDate          *time.Time `json:"work_end_date,omitempty"`
	WorkCompletionDate   *time.Time `json:"work_completion_date,omitempty"`
	HandoverDate         *time.Time `json:"handover_date,omitempty"`
	AcceptanceDate       *time.Time `json:"acceptance_date,omitempty"`
	GRNNumber            string     `json:"grn_number,omitempty"`
	WorkCompletionNumber string     `json:"work_completion_number,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		ProjectNumber:        p.ProjectNumber,
		Name:                 p.Name,
		Description:          p.Description,
		ClientID:             p.ClientID,
		Location:             p.Location,
		Building:             p.Building,
		Apartment:            p.Apartment,
		Status:               string(p.Status),
		Progress:             p.Progress,
		EngineerID:           p.EngineerID,
		WorkerIDs:            p.WorkerIDs,
		DriverID:             p.DriverID,
		WorkStartDate:        p.WorkStartDate,
		WorkEndDate:          p.WorkEndDate,
		WorkCompletionDate:   p.WorkCompletionDate,
		HandoverDate:         p.HandoverDate,
		AcceptanceDate:       p.AcceptanceDate,
		GRNNumber:            p.GRNNumber,
		WorkCompletionNumber: p.WorkCompletionNumber,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

type CommentResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	ActorID    string    `json:"actor_id"`
	Content    string    `json:"content"`
	ActionType string    `json:"action_type"`
	Progress   *int      `json:"progress,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromComment(c entities.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		ProjectID:  c.ProjectID,
		ActorID:    c.ActorID,
		Content:    c.Content,
		ActionType: string(c.ActionType),
		Progress:   c.Progress,
		CreatedAt:  c.CreatedAt,
	}
}

func FromComments(comments []entities.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, FromComment(c))
	}
	return out
}
