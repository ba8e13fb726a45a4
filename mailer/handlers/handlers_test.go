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

	"github.com/vinoterra/winery-registry/framework/mid"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/mailer"
	mailerMocks "github.com/vinoterra/winery-registry/mailer/mocks"
)

func TestEmail_SendEmail(t *testing.T) {
	body := map[string]interface{}{
		"to":      "owner@quintadovale.pt",
		"subject": "Welcome to the registry",
		"text":    "Your winery was approved.",
	}

	tests := []struct {
		name         string
		body         interface{}
		clientErr    error
		on           func(*mailerMocks.Client)
		expectedCode int
	}{
		{
			name: "message is relayed with the default sender",
			body: body,
			on: func(c *mailerMocks.Client) {
				c.On("Send", mock.AnythingOfType("*gin.Context"), &mailer.Message{
					To:      "owner@quintadovale.pt",
					From:    "noreply@vinoterra.app",
					Subject: "Welcome to the registry",
					Text:    "Your winery was approved.",
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "provider rejection is still acknowledged",
			body: body,
			on: func(c *mailerMocks.Client) {
				c.On("Send", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("*mailer.Message")).
					Return(errors.New("rate limited"))
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unconfigured mailer is still acknowledged",
			body:         body,
			clientErr:    errors.New("sendgrid api key is not configured"),
			expectedCode: http.StatusOK,
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

			c := &mailerMocks.Client{}

			h := Email{
				loggerProvider: logger.FromContext,
				client:         c,
				clientErr:      tt.clientErr,
				defaultFrom:    "noreply@vinoterra.app",
			}

			app.Post("/email", h.SendEmail)

			if tt.on != nil {
				tt.on(c)
			}

			rawBody, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/email", bytes.NewBuffer(rawBody))
			app.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.clientErr != nil {
				c.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			}
		})
	}
}
