package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/notification/dal/mocks"
	"github.com/vinoterra/winery-registry/notification/domain"
)

func TestRegistrationNotificationService_Create(t *testing.T) {
	type fields struct {
		notificationsDAL *mocks.Notifications
	}

	ctx := context.Background()
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	req := &CreateRequest{
		WineryName:           "Quinta do Vale",
		WineryEmail:          "owner@quintadovale.pt",
		WineryPhone:          "+351 912 345 678",
		WineryRepresentative: "Ana Pereira",
	}

	tests := []struct {
		name        string
		req         *CreateRequest
		wantCreated bool
		wantErr     bool
		expectedErr error

		on func(*fields)
	}{
		{
			name:        "absent key is created",
			req:         req,
			wantCreated: true,
			on: func(f *fields) {
				f.notificationsDAL.On("Exists", ctx, "quintadovale").Return(false, nil)
				f.notificationsDAL.On("Set", ctx, "quintadovale", &domain.Notification{
					RequestDate:          now,
					WineryName:           "Quinta do Vale",
					WineryEmail:          "owner@quintadovale.pt",
					WineryPhone:          "+351 912 345 678",
					WineryRepresentative: "Ana Pereira",
				}).Return(nil)
			},
		},
		{
			name:        "present key reports exists",
			req:         req,
			wantCreated: false,
			on: func(f *fields) {
				f.notificationsDAL.On("Exists", ctx, "quintadovale").Return(true, nil)
			},
		},
		{
			name:        "colliding normalized name reports exists",
			req:         &CreateRequest{WineryName: "QUINTA DOVALE"},
			wantCreated: false,
			on: func(f *fields) {
				f.notificationsDAL.On("Exists", ctx, "quintadovale").Return(true, nil)
			},
		},
		{
			name:        "whitespace-only name is rejected",
			req:         &CreateRequest{WineryName: " \t"},
			wantErr:     true,
			expectedErr: ErrEmptyWineryName,
		},
		{
			name:        "existence check failure",
			req:         req,
			wantErr:     true,
			expectedErr: errors.New("unavailable"),
			on: func(f *fields) {
				f.notificationsDAL.On("Exists", ctx, "quintadovale").Return(false, errors.New("unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				notificationsDAL: &mocks.Notifications{},
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := &RegistrationNotificationService{
				loggerProvider:   logger.FromContext,
				notificationsDAL: f.notificationsDAL,
				timeNow:          func() time.Time { return now },
			}

			created, err := s.Create(ctx, tt.req)

			if tt.wantErr {
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			f.notificationsDAL.AssertExpectations(t)
		})
	}
}

func TestRegistrationNotificationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete is idempotent", func(t *testing.T) {
		notificationsDAL := &mocks.Notifications{}
		notificationsDAL.On("Delete", ctx, "quintadovale").Return(nil)

		s := &RegistrationNotificationService{
			loggerProvider:   logger.FromContext,
			notificationsDAL: notificationsDAL,
			timeNow:          time.Now,
		}

		assert.NoError(t, s.Delete(ctx, "Quinta do Vale"))
		assert.NoError(t, s.Delete(ctx, "Quinta do Vale"))
		notificationsDAL.AssertNumberOfCalls(t, "Delete", 2)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		notificationsDAL := &mocks.Notifications{}

		s := &RegistrationNotificationService{
			loggerProvider:   logger.FromContext,
			notificationsDAL: notificationsDAL,
			timeNow:          time.Now,
		}

		assert.ErrorIs(t, s.Delete(ctx, ""), ErrEmptyWineryName)
		notificationsDAL.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
