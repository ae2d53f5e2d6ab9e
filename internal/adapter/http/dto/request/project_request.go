package request

import (
	"time"
)

// CreateProjectRequest opens a new project in draft.
type CreateProjectRequest struct {
	ActorID     string `json:"actor_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ClientID    string `json:"client_id"`
	Location    string `json:"location"`
	Building    string `json:"building"`
	Apartment   string `json:"apartment"`
}

// UpdateProjectStatusRequest moves a project along the workflow graph.
type UpdateProjectStatusRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Note    string `json:"note"`
}

// AssignTeamRequest assigns the execution team and driver.
type AssignTeamRequest struct {
	ActorID    string   `json:"actor_id" binding:"required"`
	EngineerID string   `json:"engineer_id" binding:"required"`
	WorkerIDs  []string `json:"worker_ids"`
	DriverID   string   `json:"driver_id"`
}

// UpdateProgressRequest records a site progress percentage.
type UpdateProgressRequest struct {
	ActorID  string `json:"actor_id" binding:"required"`
	Progress *int   `json:"progress" binding:"required"`
	Note     string `json:"note"`
}

// WorkDatesRequest patches milestone dates; absent fields are untouched.
type WorkDatesRequest struct {
	ActorID            string     `json:"actor_id" binding:"required"`
	WorkStartDate      *time.Time `json:"work_start_date"`
	WorkEndDate        *time.Time `json:"work_end_date"`
	WorkCompletionDate *time.Time `json:"work_completion_date"`
	HandoverDate       *time.Time `json:"handover_date"`
	AcceptanceDate     *time.Time `json:"acceptance_date"`
	GRNNumber          string     `json:"grn_number"`
}
