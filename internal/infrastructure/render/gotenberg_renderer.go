package render

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"aga_techserv/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

// GotenbergRenderer converts document HTML to PDF through a Gotenberg
// instance (Chromium HTML conversion route).
//
// Env vars:
//   - GOTENBERG_URL (default: http://localhost:3000)

type GotenbergRenderer struct {
	client  *resty.Client
	baseURL string
}

var _ interfaces.IDocumentRenderer = (*GotenbergRenderer)(nil)

func NewGotenbergRenderer() *GotenbergRenderer {
	baseURL := os.Getenv("GOTENBERG_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	return &GotenbergRenderer{
		client:  resty.New().SetTimeout(30 * time.Second),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *GotenbergRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetFileReader("files", "index.html", strings.NewReader(html)).
		Post(r.baseURL + "/forms/chromium/convert/html")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gotenberg returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
