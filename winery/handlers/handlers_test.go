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

	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/framework/mid"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/winery/service"
	serviceMock "github.com/vinoterra/winery-registry/winery/service/mocks"
)

type fields struct {
	service serviceMock.WineryService
}

func TestWinery_GetUserTierAndLevel(t *testing.T) {
	tests := []struct {
		name         string
		on           func(*fields)
		expectedCode int
		expectedBody string
	}{
		{
			name: "returns the stored subscription",
			on: func(f *fields) {
				f.service.On("GetTierAndLevel", mock.AnythingOfType("*gin.Context"), "uid-1").
					Return("gold", int64(3), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"tier":"gold","level":3}`,
		},
		{
			name: "missing winery",
			on: func(f *fields) {
				f.service.On("GetTierAndLevel", mock.AnythingOfType("*gin.Context"), "uid-1").
					Return("", int64(0), docstore.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app := web.NewTestApp(w, mid.Errors())

			f := fields{}

			h := Winery{
				loggerProvider: logger.FromContext,
				service:        &f.service,
			}

			app.Get("/users/:uid/tier", h.GetUserTierAndLevel)

			if tt.on != nil {
				tt.on(&f)
			}

			req, _ := http.NewRequest(http.MethodGet, "/users/uid-1/tier", nil)
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestWinery_UpdateUserTierAndLevel(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		on           func(*fields)
		expectedCode int
	}{
		{
			name: "valid request",
			body: map[string]interface{}{"tier": "silver", "level": 2},
			on: func(f *fields) {
				f.service.On("UpdateTierAndLevel", mock.AnythingOfType("*gin.Context"), "uid-1", "silver", int64(2)).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown tier",
			body: map[string]interface{}{"tier": "diamond", "level": 9},
			on: func(f *fields) {
				f.service.On("UpdateTierAndLevel", mock.AnythingOfType("*gin.Context"), "uid-1", "diamond", int64(9)).
					Return(service.ErrUnknownTier)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid body",
			body:         "not-json",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app := web.NewTestApp(w, mid.Errors())

			f := fields{}

			h := Winery{
				loggerProvider: logger.FromContext,
				service:        &f.service,
			}

			app.Put("/users/:uid/tier", h.UpdateUserTierAndLevel)

			if tt.on != nil {
				tt.on(&f)
			}

			rawBody, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPut, "/users/uid-1/tier", bytes.NewBuffer(rawBody))
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestWinery_CreateField(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]interface{}
		on           func(*fields)
		expectedCode int
		expectedBody string
	}{
		{
			name: "writes the field on every winery",
			body: map[string]interface{}{"field": "harvestNotes", "value": ""},
			on: func(f *fields) {
				f.service.On("CreateField", mock.AnythingOfType("*gin.Context"), "harvestNotes", "").
					Return(42, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"updated":42}`,
		},
		{
			name: "missing field name",
			body: map[string]interface{}{"value": "x"},
			on: func(f *fields) {
				f.service.On("CreateField", mock.AnythingOfType("*gin.Context"), "", "x").
					Return(0, service.ErrEmptyField)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app := web.NewTestApp(w, mid.Errors())

			f := fields{}

			h := Winery{
				loggerProvider: logger.FromContext,
				service:        &f.service,
			}

			app.Post("/wineries/fields", h.CreateField)

			if tt.on != nil {
				tt.on(&f)
			}

			rawBody, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/wineries/fields", bytes.NewBuffer(rawBody))
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestWinery_GetTotalIncome(t *testing.T) {
	t.Run("aggregates income", func(t *testing.T) {
		w := httptest.NewRecorder()
		app := web.NewTestApp(w, mid.Errors())

		f := fields{}
		f.service.On("TotalIncome", mock.AnythingOfType("*gin.Context")).Return(249.7, nil)

		h := Winery{
			loggerProvider: logger.FromContext,
			service:        &f.service,
		}

		app.Get("/wineries/total-income", h.GetTotalIncome)

		req, _ := http.NewRequest(http.MethodGet, "/wineries/total-income", nil)
		app.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalIncome":249.7}`, w.Body.String())
	})

	t.Run("aggregation failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		app := web.NewTestApp(w, mid.Errors())

		f := fields{}
		f.service.On("TotalIncome", mock.AnythingOfType("*gin.Context")).
			Return(float64(0), errors.New("no singleton"))

		h := Winery{
			loggerProvider: logger.FromContext,
			service:        &f.service,
		}

		app.Get("/wineries/total-income", h.GetTotalIncome)

		req, _ := http.NewRequest(http.MethodGet, "/wineries/total-income", nil)
		app.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
