package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/common"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/mailer"
)

type Email struct {
	loggerProvider logger.Provider
	client         mailer.Client
	clientErr      error
	defaultFrom    string
}

func NewEmail(ctx context.Context, log logger.Provider) *Email {
	client, err := mailer.NewSendGridClient(ctx)

	return &Email{
		loggerProvider: log,
		client:         client,
		clientErr:      err,
		defaultFrom:    common.GetEnv("EMAIL_FROM", "noreply@vinoterra.app"),
	}
}

type sendEmailRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// SendEmail relays one message. The response acknowledges the request either
// way; a provider rejection is logged, not surfaced, so a flaky mail provider
// cannot fail the caller's flow.
func (h *Email) SendEmail(ctx *gin.Context) error {
	log := h.loggerProvider(ctx)

	var req sendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if h.clientErr != nil {
		log.Errorf("mail client unavailable: %s", h.clientErr)
		return web.Respond(ctx, nil, http.StatusOK)
	}

	from := req.From
	if from == "" {
		from = h.defaultFrom
	}

	msg := mailer.Message{
		To:      req.To,
		From:    from,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	}

	if err := h.client.Send(ctx, &msg); err != nil {
		log.Errorf("mail send to %s failed: %s", req.To, err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
