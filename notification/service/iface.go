package service

import (
	"context"
)

//go:generate mockery --name NotificationService --output ./mocks

type NotificationService interface {
	Create(ctx context.Context, req *CreateRequest) (created bool, err error)
	Delete(ctx context.Context, wineryName string) error
}
