package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/account/domain"
	"github.com/vinoterra/winery-registry/framework/web"
)

type pushEnvelope struct {
	Subscription string      `json:"subscription"`
	Message      pushMessage `json:"message"`
}

type pushMessage struct {
	MessageID  string            `json:"messageId"`
	Data       []byte            `json:"data"`
	Attributes map[string]string `json:"attributes"`
}

// HandleAuthEvent processes account lifecycle events. Unknown event types are
// acknowledged so the subscription does not redeliver them forever; processing
// failures are returned so the message is retried.
func (h *Account) HandleAuthEvent(ctx *gin.Context) error {
	log := h.loggerProvider(ctx)

	var envelope pushEnvelope
	if err := ctx.ShouldBindJSON(&envelope); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	eventType := envelope.Message.Attributes["eventType"]
	uid := envelope.Message.Attributes["uid"]

	log.Infof("auth event %s for account %s (message %s)", eventType, uid, envelope.Message.MessageID)

	switch eventType {
	case domain.EventUserCreated:
		if err := h.service.AccountCreated(ctx, uid); err != nil {
			return translateError(err)
		}
	case domain.EventUserDeleted:
		if err := h.service.AccountDeleted(ctx, uid); err != nil {
			return translateError(err)
		}
	default:
		log.Warningf("ignoring unknown auth event type %q", eventType)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
