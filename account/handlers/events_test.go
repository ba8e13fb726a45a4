package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vinoterra/winery-registry/account/domain"
	serviceMock "github.com/vinoterra/winery-registry/account/service/mocks"
	"github.com/vinoterra/winery-registry/framework/mid"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
)

func pushBody(eventType, uid string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"subscription": "projects/test/subscriptions/auth-events",
		"message": map[string]interface{}{
			"messageId": "msg-1",
			"attributes": map[string]string{
				"eventType": eventType,
				"uid":       uid,
			},
		},
	})

	return body
}

func TestAccount_HandleAuthEvent(t *testing.T) {
	tests := []struct {
		name         string
		body         []byte
		on           func(*serviceMock.AccountService)
		assert       func(*testing.T, *serviceMock.AccountService)
		expectedCode int
	}{
		{
			name: "user created event seeds the winery document",
			body: pushBody(domain.EventUserCreated, "uid-1"),
			on: func(s *serviceMock.AccountService) {
				s.On("AccountCreated", mock.AnythingOfType("*gin.Context"), "uid-1").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "user deleted event purges the winery",
			body: pushBody(domain.EventUserDeleted, "uid-1"),
			on: func(s *serviceMock.AccountService) {
				s.On("AccountDeleted", mock.AnythingOfType("*gin.Context"), "uid-1").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown event type is acknowledged without processing",
			body: pushBody("user.updated", "uid-1"),
			assert: func(t *testing.T, s *serviceMock.AccountService) {
				s.AssertNotCalled(t, "AccountCreated", mock.Anything, mock.Anything)
				s.AssertNotCalled(t, "AccountDeleted", mock.Anything, mock.Anything)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "processing failure is returned for redelivery",
			body: pushBody(domain.EventUserDeleted, "uid-1"),
			on: func(s *serviceMock.AccountService) {
				s.On("AccountDeleted", mock.AnythingOfType("*gin.Context"), "uid-1").
					Return(errors.New("bucket gone"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "malformed envelope",
			body:         []byte("not-an-envelope"),
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app := web.NewTestApp(w, mid.Errors())

			s := &serviceMock.AccountService{}

			h := Account{
				loggerProvider: logger.FromContext,
				service:        s,
			}

			app.Post("/events/auth", h.HandleAuthEvent)

			if tt.on != nil {
				tt.on(s)
			}

			req, _ := http.NewRequest(http.MethodPost, "/events/auth", bytes.NewBuffer(tt.body))
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.assert != nil {
				tt.assert(t, s)
			}
		})
	}
}
