package service

import (
	"context"
	"errors"
	"time"

	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/notification/dal"
	"github.com/vinoterra/winery-registry/notification/domain"
)

// ErrEmptyWineryName is returned when the winery name normalizes to an empty key.
var ErrEmptyWineryName = errors.New("winery name is required")

// CreateRequest carries the fields of a new registration request.
type CreateRequest struct {
	WineryName           string `json:"wineryName"`
	WineryEmail          string `json:"wineryEmail"`
	WineryPhone          string `json:"wineryPhone"`
	WineryRepresentative string `json:"wineryRepresentative"`
}

type RegistrationNotificationService struct {
	loggerProvider   logger.Provider
	notificationsDAL dal.Notifications
	timeNow          func() time.Time
}

func NewNotificationService(log logger.Provider, conn *connection.Connection) *RegistrationNotificationService {
	return &RegistrationNotificationService{
		loggerProvider:   log,
		notificationsDAL: dal.NewNotificationsFirestoreWithClient(conn.Firestore),
		timeNow:          time.Now,
	}
}

// Create stores a registration request unless one already exists for the
// normalized winery name. The existence check and the write are separate
// operations; two concurrent requests for the same key may both observe the
// key as absent and the later write then silently overwrites the earlier one.
func (s *RegistrationNotificationService) Create(ctx context.Context, req *CreateRequest) (bool, error) {
	key := domain.NormalizeName(req.WineryName)
	if key == "" {
		return false, ErrEmptyWineryName
	}

	exists, err := s.notificationsDAL.Exists(ctx, key)
	if err != nil {
		return false, err
	}

	if exists {
		return false, nil
	}

	notification := domain.Notification{
		RequestDate:          s.timeNow().UTC(),
		WineryName:           req.WineryName,
		WineryEmail:          req.WineryEmail,
		WineryPhone:          req.WineryPhone,
		WineryRepresentative: req.WineryRepresentative,
	}

	if err := s.notificationsDAL.Set(ctx, key, &notification); err != nil {
		return false, err
	}

	return true, nil
}

// Delete removes the registration request for the winery name. Deleting a
// key that is absent is not an error.
func (s *RegistrationNotificationService) Delete(ctx context.Context, wineryName string) error {
	key := domain.NormalizeName(wineryName)
	if key == "" {
		return ErrEmptyWineryName
	}

	return s.notificationsDAL.Delete(ctx, key)
}
