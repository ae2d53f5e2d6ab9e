package entities

import "time"

// UserRole distinguishes the actors the workflow cares about.
//
// Team assignment validates workers/drivers against these values, and
// notification fan-out targets the assigned engineer plus every admin.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEngineer UserRole = "engineer"
	UserRoleWorker   UserRole = "worker"
	UserRoleDriver   UserRole = "driver"
)

// User is the minimal identity record consumed by the workflow engine.
// Authentication itself lives outside this service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (role-index): role
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	DailyRate float64   `json:"daily_rate,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
