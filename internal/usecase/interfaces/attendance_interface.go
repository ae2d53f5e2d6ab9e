package interfaces

import "context"

// IAttendanceProvider exposes the external attendance system. Expense
// reports derive labor cost from these figures, never from request
// payloads.
type IAttendanceProvider interface {
	DaysPresent(ctx context.Context, projectID, userID string) (int, error)
}
