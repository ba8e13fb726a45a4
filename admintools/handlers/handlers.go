package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/admintools/service"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
)

type AdminTools struct {
	loggerProvider logger.Provider
	service        service.AdminToolsService
}

func NewAdminTools(log logger.Provider, conn *connection.Connection) *AdminTools {
	return &AdminTools{
		loggerProvider: log,
		service:        service.NewAdminToolsService(log, conn),
	}
}

type replaceFieldRequest struct {
	Collection string `json:"collection"`
	OldField   string `json:"oldField"`
	NewField   string `json:"newField"`
}

type replaceFieldResponse struct {
	Updated int `json:"updated"`
}

type downloadURLResponse struct {
	URL string `json:"url"`
}

func (h *AdminTools) ReplaceDbFieldName(ctx *gin.Context) error {
	var req replaceFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	updated, err := h.service.ReplaceFieldName(ctx, req.Collection, req.OldField, req.NewField)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, replaceFieldResponse{Updated: updated}, http.StatusOK)
}

func (h *AdminTools) GetFileDownloadURLByPath(ctx *gin.Context) error {
	url, err := h.service.FileDownloadURL(ctx, ctx.Query("path"))
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, downloadURLResponse{URL: url}, http.StatusOK)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrMissingReplaceParams),
		errors.Is(err, service.ErrEmptyPath):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
