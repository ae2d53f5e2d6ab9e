package attendance

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"aga_techserv/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

// HTTPAttendanceProvider reads presence figures from the attendance
// service. Expense reports rely on it for labor days; the figure is never
// accepted from API callers.
//
// Env vars:
//   - ATTENDANCE_BASE_URL (default: http://localhost:8081)

type HTTPAttendanceProvider struct {
	client  *resty.Client
	baseURL string
}

var _ interfaces.IAttendanceProvider = (*HTTPAttendanceProvider)(nil)

func NewHTTPAttendanceProvider() *HTTPAttendanceProvider {
	baseURL := os.Getenv("ATTENDANCE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}

	return &HTTPAttendanceProvider{
		client:  resty.New().SetTimeout(10 * time.Second),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type daysPresentResponse struct {
	DaysPresent int `json:"days_present"`
}

func (p *HTTPAttendanceProvider) DaysPresent(ctx context.Context, projectID, userID string) (int, error) {
	var out daysPresentResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"project_id": projectID, "user_id": userID}).
		SetResult(&out).
		Get(p.baseURL + "/v1/projects/{project_id}/attendance/{user_id}")
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, fmt.Errorf("attendance service returned status %d", resp.StatusCode())
	}
	return out.DaysPresent, nil
}
