package dal

import (
	"context"

	"github.com/vinoterra/winery-registry/notification/domain"
)

//go:generate mockery --name Notifications --output ./mocks

type Notifications interface {
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, notification *domain.Notification) error
	Delete(ctx context.Context, key string) error
}
