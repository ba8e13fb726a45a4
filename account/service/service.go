package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vinoterra/winery-registry/account/dal"
	"github.com/vinoterra/winery-registry/account/domain"
	"github.com/vinoterra/winery-registry/blobs"
	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/logger"
	taxonomyDal "github.com/vinoterra/winery-registry/taxonomy/dal"
	wineryDal "github.com/vinoterra/winery-registry/winery/dal"
	wineryDomain "github.com/vinoterra/winery-registry/winery/domain"
)

var (
	// ErrEmptyEmail is returned when an operation requires an email.
	ErrEmptyEmail = errors.New("email is required")

	// ErrEmptyPassword is returned when an operation requires a password.
	ErrEmptyPassword = errors.New("password is required")

	// ErrEmptyUID is returned when an operation requires an account id.
	ErrEmptyUID = errors.New("uid is required")
)

// CreateUserRequest carries the fields of a new registry account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Tier     string `json:"tier"`
	Level    int64  `json:"level"`
}

type RegistryAccountService struct {
	loggerProvider logger.Provider
	identityDAL    dal.Identity
	eventsDAL      dal.Events
	wineriesDAL    wineryDal.Wineries
	sysVarsDAL     taxonomyDal.SystemVariables
	blobs          blobs.Blobs
}

func NewAccountService(log logger.Provider, conn *connection.Connection) *RegistryAccountService {
	return &RegistryAccountService{
		loggerProvider: log,
		identityDAL:    dal.NewIdentityFirebaseWithClient(conn.Auth),
		eventsDAL:      dal.NewEventsPubsubWithClient(conn.Pubsub),
		wineriesDAL:    wineryDal.NewWineriesFirestoreWithClient(conn.Firestore),
		sysVarsDAL:     taxonomyDal.NewSystemVariablesFirestoreWithClient(conn.Firestore),
		blobs:          blobs.NewCloudStorageBlobsWithClient(conn.CloudStorage),
	}
}

// CreateUser creates the identity account and its winery document. There is
// no rollback: if the document write fails the identity account stays behind
// and the error is returned.
func (s *RegistryAccountService) CreateUser(ctx context.Context, req *CreateUserRequest) (*domain.Account, error) {
	if req.Email == "" {
		return nil, ErrEmptyEmail
	}

	if req.Password == "" {
		return nil, ErrEmptyPassword
	}

	account, err := s.identityDAL.CreateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	winery := wineryDomain.NewWinery(req.Tier, req.Level)
	if err := s.wineriesDAL.Create(ctx, account.UID, winery); err != nil {
		return nil, err
	}

	// Downstream consumers learn about the account from the lifecycle topic.
	// The seed handler is a no-op here since the document already exists.
	if err := s.eventsDAL.PublishAccountEvent(ctx, domain.EventUserCreated, account.UID); err != nil {
		s.loggerProvider(ctx).Warningf("could not publish creation event for account %s: %s", account.UID, err)
	}

	return account, nil
}

func (s *RegistryAccountService) ListUsers(ctx context.Context) ([]*domain.Account, error) {
	return s.identityDAL.ListUsers(ctx)
}

// DisableUser disables both the identity account and the winery document.
// Both writes are awaited; the first failure is returned.
func (s *RegistryAccountService) DisableUser(ctx context.Context, uid string) error {
	if uid == "" {
		return ErrEmptyUID
	}

	if err := s.identityDAL.SetDisabled(ctx, uid, true); err != nil {
		return err
	}

	return s.wineriesDAL.SetDisabled(ctx, uid, true)
}

// DeleteUser backs the winery document up to the trash collection and then
// deletes the identity account. The live document is left in place; the
// deletion event published here comes back through the push subscription and
// cleans it up along with the stored files.
func (s *RegistryAccountService) DeleteUser(ctx context.Context, uid string) error {
	if uid == "" {
		return ErrEmptyUID
	}

	log := s.loggerProvider(ctx)

	backup, err := s.wineriesDAL.GetRaw(ctx, uid)

	switch {
	case errors.Is(err, docstore.ErrNotFound):
		log.Warningf("no winery document to back up for account %s", uid)
	case err != nil:
		return err
	default:
		if err := s.wineriesDAL.SaveTrashBackup(ctx, uid, backup); err != nil {
			return err
		}
	}

	if err := s.identityDAL.DeleteUser(ctx, uid); err != nil {
		return err
	}

	// The account is already gone, so a publish failure must not fail the
	// request. Cleanup waits for the event to be re-emitted or run by hand.
	if err := s.eventsDAL.PublishAccountEvent(ctx, domain.EventUserDeleted, uid); err != nil {
		log.Errorf("could not publish deletion event for account %s: %s", uid, err)
	}

	return nil
}

func (s *RegistryAccountService) UpdatePassword(ctx context.Context, uid, password string) error {
	if uid == "" {
		return ErrEmptyUID
	}

	if password == "" {
		return ErrEmptyPassword
	}

	return s.identityDAL.UpdatePassword(ctx, uid, password)
}

// IsAdmin reports whether the email belongs to the admin set on the system
// variables singleton. A missing admin set is an error, not a false.
func (s *RegistryAccountService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, ErrEmptyEmail
	}

	admins, err := s.sysVarsDAL.GetAdmins(ctx)
	if err != nil {
		return false, err
	}

	for _, admin := range admins {
		if strings.EqualFold(admin, email) {
			return true, nil
		}
	}

	return false, nil
}

// AccountCreated seeds the winery document for a newly created account with
// the default tier and level. An already existing document is left alone, so
// accounts created through the API keep the tier they were given.
func (s *RegistryAccountService) AccountCreated(ctx context.Context, uid string) error {
	if uid == "" {
		return ErrEmptyUID
	}

	log := s.loggerProvider(ctx)

	if _, err := s.wineriesDAL.Get(ctx, uid); err == nil {
		log.Infof("winery document already present for account %s", uid)
		return nil
	} else if !errors.Is(err, docstore.ErrNotFound) {
		return err
	}

	defaults, err := s.sysVarsDAL.GetDefaults(ctx)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			log.Warning("no default tier configured, skipping winery document seed")
			return nil
		}

		return err
	}

	return s.wineriesDAL.Create(ctx, uid, wineryDomain.NewWinery(defaults.Tier, defaults.Level))
}

// AccountDeleted purges the stored files and the live winery document of a
// deleted account. No backup is taken here.
func (s *RegistryAccountService) AccountDeleted(ctx context.Context, uid string) error {
	if uid == "" {
		return ErrEmptyUID
	}

	log := s.loggerProvider(ctx)

	deleted, err := s.blobs.DeletePrefix(ctx, fmt.Sprintf("images/%s/", uid))
	if err != nil {
		return err
	}

	log.Infof("deleted %d stored files for account %s", deleted, uid)

	return s.wineriesDAL.Delete(ctx, uid)
}
