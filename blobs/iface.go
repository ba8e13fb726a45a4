package blobs

import (
	"context"
)

//go:generate mockery --name Blobs --output ./mocks

// Blobs is the object storage surface used by the registry: read-only
// download links for stored files and bulk cleanup when an account goes away.
type Blobs interface {
	SignedURL(ctx context.Context, path string) (string, error)
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}
