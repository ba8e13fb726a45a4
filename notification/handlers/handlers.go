package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/notification/service"
)

type Notification struct {
	loggerProvider logger.Provider
	service        service.NotificationService
}

func NewNotification(log logger.Provider, conn *connection.Connection) *Notification {
	return &Notification{
		loggerProvider: log,
		service:        service.NewNotificationService(log, conn),
	}
}

type createNotificationResponse struct {
	Exists bool `json:"exists"`
}

type deleteNotificationRequest struct {
	WineryName string `json:"wineryName"`
}

func (h *Notification) CreateNotification(ctx *gin.Context) error {
	var req service.CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	created, err := h.service.Create(ctx, &req)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, createNotificationResponse{Exists: !created}, http.StatusOK)
}

func (h *Notification) DeleteNotification(ctx *gin.Context) error {
	var req deleteNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.Delete(ctx, req.WineryName); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func translateError(err error) error {
	if errors.Is(err, service.ErrEmptyWineryName) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.NewRequestError(err, http.StatusInternalServerError)
}
