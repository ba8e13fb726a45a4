package dal

import (
	"context"
)

//go:generate mockery --name Fields --output=./mocks

// Fields is the maintenance surface for collection-wide schema edits.
type Fields interface {
	ReplaceFieldName(ctx context.Context, collection, oldField, newField string) (int, error)
}
