package entities

import "time"

// ProjectStatus represents the lifecycle of a technical-services project.
//
// Domain notes:
//   - This service is the source of truth for project/document state.
//   - The set of statuses is closed; legal movements between them live in
//     internal/domain/workflow and every status mutation goes through it.
type ProjectStatus string

const (
	ProjectStatusDraft              ProjectStatus = "draft"
	ProjectStatusEstimationPrepared ProjectStatus = "estimation_prepared"
	ProjectStatusQuotationSent      ProjectStatus = "quotation_sent"
	ProjectStatusQuotationApproved  ProjectStatus = "quotation_approved"
	ProjectStatusQuotationRejected  ProjectStatus = "quotation_rejected"
	ProjectStatusLPOReceived        ProjectStatus = "lpo_received"
	ProjectStatusTeamAssigned       ProjectStatus = "team_assigned"
	ProjectStatusWorkStarted        ProjectStatus = "work_started"
	ProjectStatusInProgress         ProjectStatus = "in_progress"
	ProjectStatusWorkCompleted      ProjectStatus = "work_completed"
	ProjectStatusQualityCheck       ProjectStatus = "quality_check"
	ProjectStatusClientHandover     ProjectStatus = "client_handover"
	ProjectStatusFinalInvoiceSent   ProjectStatus = "final_invoice_sent"
	ProjectStatusPaymentReceived    ProjectStatus = "payment_received"
	ProjectStatusOnHold             ProjectStatus = "on_hold"
	ProjectStatusCancelled          ProjectStatus = "cancelled"
	ProjectStatusProjectClosed      ProjectStatus = "project_closed"
)

// AllProjectStatuses lists every valid status value.
var AllProjectStatuses = []ProjectStatus{
	ProjectStatusDraft,
	ProjectStatusEstimationPrepared,
	ProjectStatusQuotationSent,
	ProjectStatusQuotationApproved,
	ProjectStatusQuotationRejected,
	ProjectStatusLPOReceived,
	ProjectStatusTeamAssigned,
	ProjectStatusWorkStarted,
	ProjectStatusInProgress,
	ProjectStatusWorkCompleted,
	ProjectStatusQualityCheck,
	ProjectStatusClientHandover,
	ProjectStatusFinalInvoiceSent,
	ProjectStatusPaymentReceived,
	ProjectStatusOnHold,
	ProjectStatusCancelled,
	ProjectStatusProjectClosed,
}

// IsValid reports whether s is one of the known status values.
func (s ProjectStatus) IsValid() bool {
	for _, known := range AllProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Project is the aggregate root every financial document hangs off.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_number-index): project_number
//
// Invariants:
//   - Status is always a member of AllProjectStatuses.
//   - Progress stays within [0,100].
//   - Never hard-deleted once past draft.
type Project struct {
	ID            string        `json:"id"`
	ProjectNumber string        `json:"project_number"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ClientID      string        `json:"client_id"`
	Location      string        `json:"location"`
	Building      string        `json:"building"`
	Apartment     string        `json:"apartment"`
	Status        ProjectStatus `json:"status"`
	Progress      int           `json:"progress"`

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
