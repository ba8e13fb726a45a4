package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vinoterra/winery-registry/framework/mid"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/taxonomy/domain"
	"github.com/vinoterra/winery-registry/taxonomy/service"
	serviceMock "github.com/vinoterra/winery-registry/taxonomy/service/mocks"
)

func TestTaxonomy_GetList(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		on           func(*serviceMock.TaxonomyService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "known key",
			key:  "wine-colours",
			on: func(s *serviceMock.TaxonomyService) {
				s.On("GetList", mock.AnythingOfType("*gin.Context"), "wine-colours").
					Return([]string{"red", "white"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"key":"wine-colours","values":["red","white"]}`,
		},
		{
			name: "unknown key",
			key:  "grape-colours",
			on: func(s *serviceMock.TaxonomyService) {
				s.On("GetList", mock.AnythingOfType("*gin.Context"), "grape-colours").
					Return(nil, service.ErrUnknownList)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app := web.NewTestApp(w, mid.Errors())

			s := &serviceMock.TaxonomyService{}

			h := Taxonomy{
				l:   logger.FromContext,
				svc: s,
			}

			app.Get("/taxonomies/:key", h.GetList)

			if tt.on != nil {
				tt.on(s)
			}

			req, _ := http.NewRequest(http.MethodGet, "/taxonomies/"+tt.key, nil)
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestTaxonomy_SetList(t *testing.T) {
	t.Run("create and update are the same overwrite", func(t *testing.T) {
		w := httptest.NewRecorder()
		app := web.NewTestApp(w, mid.Errors())

		s := &serviceMock.TaxonomyService{}
		s.On("SetList", mock.AnythingOfType("*gin.Context"), "bottle-sizes", []string{"0.75l"}).Return(nil)

		h := Taxonomy{
			l:   logger.FromContext,
			svc: s,
		}

		app.Put("/taxonomies/:key", h.SetList)

		rawBody, _ := json.Marshal(map[string]interface{}{"values": []string{"0.75l"}})
		req, _ := http.NewRequest(http.MethodPut, "/taxonomies/bottle-sizes", bytes.NewBuffer(rawBody))
		app.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"key":"bottle-sizes","values":["0.75l"]}`, w.Body.String())
	})
}

func TestTaxonomy_SetLevelMap(t *testing.T) {
	completeMap := map[string]interface{}{
		"bronze":   map[string]interface{}{"price": 0, "quota": 10},
		"silver":   map[string]interface{}{"price": 49.9, "quota": 50},
		"gold":     map[string]interface{}{"price": 99.9, "quota": 200},
		"platinum": map[string]interface{}{"price": 199.9, "quota": 1000},
	}

	tests := []struct {
		name         string
		body         map[string]interface{}
		on           func(*serviceMock.TaxonomyService)
		expectedCode int
	}{
		{
			name: "complete map",
			body: completeMap,
			on: func(s *serviceMock.TaxonomyService) {
				s.On("SetLevelMap", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.LevelMap")).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "incomplete map",
			body: map[string]interface{}{"bronze": map[string]interface{}{"price": 0, "quota": 10}},
			on: func(s *serviceMock.TaxonomyService) {
				s.On("SetLevelMap", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.LevelMap")).
					Return(service.ErrIncompleteLevelMap)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app := web.NewTestApp(w, mid.Errors())

			s := &serviceMock.TaxonomyService{}

			h := Taxonomy{
				l:   logger.FromContext,
				svc: s,
			}

			app.Put("/taxonomies/level-map", h.SetLevelMap)

			if tt.on != nil {
				tt.on(s)
			}

			rawBody, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPut, "/taxonomies/level-map", bytes.NewBuffer(rawBody))
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestTaxonomy_GetLevelMap(t *testing.T) {
	w := httptest.NewRecorder()
	app := web.NewTestApp(w, mid.Errors())

	s := &serviceMock.TaxonomyService{}
	s.On("GetLevelMap", mock.AnythingOfType("*gin.Context")).Return(domain.LevelMap{
		domain.TierBronze: {Price: 0, Quota: 10},
	}, nil)

	h := Taxonomy{
		l:   logger.FromContext,
		svc: s,
	}

	app.Get("/taxonomies/level-map", h.GetLevelMap)

	req, _ := http.NewRequest(http.MethodGet, "/taxonomies/level-map", nil)
	app.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"level":{"bronze":{"price":0,"quota":10}}}`, w.Body.String())
}
