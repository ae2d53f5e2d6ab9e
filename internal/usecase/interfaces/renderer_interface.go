package interfaces

import "context"

// IDocumentRenderer abstracts HTML-to-PDF rendering (Gotenberg in
// production). The workflow engine hands it document HTML and receives the
// binary artifact for download or archival.
type IDocumentRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}
