package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vinoterra/winery-registry/account/domain"
	"github.com/vinoterra/winery-registry/account/service"
	serviceMock "github.com/vinoterra/winery-registry/account/service/mocks"
	"github.com/vinoterra/winery-registry/framework/mid"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	taxonomyDal "github.com/vinoterra/winery-registry/taxonomy/dal"
)

func TestAccount_CreateNewUser(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		on           func(*serviceMock.AccountService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "valid request",
			body: map[string]interface{}{
				"email":    "owner@quintadovale.pt",
				"password": "correct-horse",
				"tier":     "silver",
				"level":    2,
			},
			on: func(s *serviceMock.AccountService) {
				s.On("CreateUser", mock.AnythingOfType("*gin.Context"), &service.CreateUserRequest{
					Email:    "owner@quintadovale.pt",
					Password: "correct-horse",
					Tier:     "silver",
					Level:    2,
				}).Return(&domain.Account{UID: "uid-1", Email: "owner@quintadovale.pt"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"uid":"uid-1","email":"owner@quintadovale.pt","tier":"silver","level":2}`,
		},
		{
			name: "missing email",
			body: map[string]interface{}{"password": "x"},
			on: func(s *serviceMock.AccountService) {
				s.On("CreateUser", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("*service.CreateUserRequest")).
					Return(nil, service.ErrEmptyEmail)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid body",
			body:         "nope",
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

			app.Post("/users", h.CreateNewUser)

			if tt.on != nil {
				tt.on(s)
			}

			rawBody, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(rawBody))
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestAccount_IsUserAdmin(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		on           func(*serviceMock.AccountService)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "admin email",
			query: "?email=root@vinoterra.app",
			on: func(s *serviceMock.AccountService) {
				s.On("IsAdmin", mock.AnythingOfType("*gin.Context"), "root@vinoterra.app").Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"admin":true}`,
		},
		{
			name:  "missing email",
			query: "",
			on: func(s *serviceMock.AccountService) {
				s.On("IsAdmin", mock.AnythingOfType("*gin.Context"), "").Return(false, service.ErrEmptyEmail)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "no admin set configured",
			query: "?email=root@vinoterra.app",
			on: func(s *serviceMock.AccountService) {
				s.On("IsAdmin", mock.AnythingOfType("*gin.Context"), "root@vinoterra.app").
					Return(false, taxonomyDal.ErrNoAdminSet)
			},
			expectedCode: http.StatusInternalServerError,
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

			app.Get("/users/admin", h.IsUserAdmin)

			if tt.on != nil {
				tt.on(s)
			}

			req, _ := http.NewRequest(http.MethodGet, "/users/admin"+tt.query, nil)
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
