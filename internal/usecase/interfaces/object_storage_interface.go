package interfaces

import "context"

// IObjectStorage abstracts attachment storage (S3 in production), keyed by
// an opaque string chosen by the caller.
type IObjectStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}
