package dal

import (
	"context"

	"github.com/vinoterra/winery-registry/account/domain"
)

//go:generate mockery --name Identity --output=./mocks

// Identity is the account store backed by the identity provider.
type Identity interface {
	CreateUser(ctx context.Context, email, password string) (*domain.Account, error)
	DeleteUser(ctx context.Context, uid string) error
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	UpdatePassword(ctx context.Context, uid, password string) error
	ListUsers(ctx context.Context) ([]*domain.Account, error)
}

//go:generate mockery --name Events --output=./mocks

// Events is the outbound side of the account lifecycle topic.
type Events interface {
	PublishAccountEvent(ctx context.Context, eventType, uid string) error
}
