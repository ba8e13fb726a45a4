package service

import (
	"context"
)

//go:generate mockery --name AdminToolsService --output ./mocks

type AdminToolsService interface {
	ReplaceFieldName(ctx context.Context, collection, oldField, newField string) (int, error)
	FileDownloadURL(ctx context.Context, path string) (string, error)
}
