package dal

import (
	"context"

	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"github.com/vinoterra/winery-registry/account/domain"
)

// AuthFromContextFun resolves the identity provider client for a request.
type AuthFromContextFun = func(ctx context.Context) *fbauth.Client

type IdentityFirebase struct {
	authClientFun AuthFromContextFun
}

func NewIdentityFirebaseWithClient(fun AuthFromContextFun) *IdentityFirebase {
	return &IdentityFirebase{
		authClientFun: fun,
	}
}

func toAccount(record *fbauth.UserRecord) *domain.Account {
	account := domain.Account{
		UID:      record.UID,
		Email:    record.Email,
		Disabled: record.Disabled,
	}

	if record.UserMetadata != nil {
		account.Created = record.UserMetadata.CreationTimestamp
	}

	return &account
}

func (d *IdentityFirebase) CreateUser(ctx context.Context, email, password string) (*domain.Account, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := d.authClientFun(ctx).CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}

	return toAccount(record), nil
}

func (d *IdentityFirebase) DeleteUser(ctx context.Context, uid string) error {
	return d.authClientFun(ctx).DeleteUser(ctx, uid)
}

func (d *IdentityFirebase) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	params := (&fbauth.UserToUpdate{}).Disabled(disabled)

	_, err := d.authClientFun(ctx).UpdateUser(ctx, uid, params)

	return err
}

func (d *IdentityFirebase) UpdatePassword(ctx context.Context, uid, password string) error {
	params := (&fbauth.UserToUpdate{}).Password(password)

	_, err := d.authClientFun(ctx).UpdateUser(ctx, uid, params)

	return err
}

func (d *IdentityFirebase) ListUsers(ctx context.Context) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0)

	iter := d.authClientFun(ctx).Users(ctx, "")

	for {
		record, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		accounts = append(accounts, toAccount(record.UserRecord))
	}

	return accounts, nil
}
