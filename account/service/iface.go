package service

import (
	"context"

	"github.com/vinoterra/winery-registry/account/domain"
)

//go:generate mockery --name AccountService --output ./mocks

type AccountService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*domain.Account, error)
	ListUsers(ctx context.Context) ([]*domain.Account, error)
	DisableUser(ctx context.Context, uid string) error
	DeleteUser(ctx context.Context, uid string) error
	UpdatePassword(ctx context.Context, uid, password string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
	AccountCreated(ctx context.Context, uid string) error
	AccountDeleted(ctx context.Context, uid string) error
}
