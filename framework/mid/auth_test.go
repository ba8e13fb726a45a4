package mid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vinoterra/winery-registry/framework/web"
)

func TestAuthRequired_NoCallerIdentity(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		expectedBody string
	}{
		{
			name:         "missing authorization header",
			authHeader:   "",
			expectedBody: `{"error":"no Authorization header found","code":"unauthenticated"}`,
		},
		{
			name:         "malformed authorization header",
			authHeader:   "Token abc",
			expectedBody: `{"error":"invalid Authorization header found","code":"unauthenticated"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app := web.NewTestApp(w, Errors(), AuthRequired(nil))

			handlerInvoked := false

			app.Get("/secure", func(ctx *gin.Context) error {
				handlerInvoked = true
				return web.Respond(ctx, nil, http.StatusOK)
			})

			req, _ := http.NewRequest(http.MethodGet, "/secure", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			app.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.False(t, handlerInvoked, "request without caller identity must never reach the handler")
		})
	}
}

func TestServiceAccount_NoCallerIdentity(t *testing.T) {
	w := httptest.NewRecorder()
	app := web.NewTestApp(w, Errors(), ServiceAccount(nil))

	handlerInvoked := false

	app.Post("/events", func(ctx *gin.Context) error {
		handlerInvoked = true
		return web.Respond(ctx, nil, http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodPost, "/events", nil)
	app.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized operation","code":"unauthenticated"}`, w.Body.String())
	assert.False(t, handlerInvoked, "request without a service identity must never reach the handler")
}
