package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/winery/service"
)

type Winery struct {
	loggerProvider logger.Provider
	service        service.WineryService
}

func NewWinery(log logger.Provider, conn *connection.Connection) *Winery {
	return &Winery{
		loggerProvider: log,
		service:        service.NewWineryService(log, conn),
	}
}

type tierAndLevelResponse struct {
	Tier  string `json:"tier"`
	Level int64  `json:"level"`
}

type updateTierAndLevelRequest struct {
	Tier  string `json:"tier"`
	Level int64  `json:"level"`
}

type wineryNameResponse struct {
	WineryName string `json:"wineryName"`
}

type createFieldRequest struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

type createFieldResponse struct {
	Updated int `json:"updated"`
}

type totalIncomeResponse struct {
	TotalIncome float64 `json:"totalIncome"`
}

func (h *Winery) GetUserTierAndLevel(ctx *gin.Context) error {
	uid := ctx.Param("uid")

	tier, level, err := h.service.GetTierAndLevel(ctx, uid)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, tierAndLevelResponse{Tier: tier, Level: level}, http.StatusOK)
}

func (h *Winery) UpdateUserTierAndLevel(ctx *gin.Context) error {
	uid := ctx.Param("uid")

	var req updateTierAndLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.UpdateTierAndLevel(ctx, uid, req.Tier, req.Level); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Winery) GetWineryName(ctx *gin.Context) error {
	uid := ctx.Param("uid")

	name, err := h.service.GetWineryName(ctx, uid)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, wineryNameResponse{WineryName: name}, http.StatusOK)
}

func (h *Winery) RegisterGeneralInfo(ctx *gin.Context) error {
	uid := ctx.Param("uid")

	var generalInfo map[string]interface{}
	if err := ctx.ShouldBindJSON(&generalInfo); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.RegisterGeneralInfo(ctx, uid, generalInfo); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Winery) CreateField(ctx *gin.Context) error {
	var req createFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	updated, err := h.service.CreateField(ctx, req.Field, req.Value)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, createFieldResponse{Updated: updated}, http.StatusOK)
}

func (h *Winery) GetTotalIncome(ctx *gin.Context) error {
	total, err := h.service.TotalIncome(ctx)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, totalIncomeResponse{TotalIncome: total}, http.StatusOK)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrUnknownTier),
		errors.Is(err, service.ErrEmptyField),
		errors.Is(err, service.ErrEmptyGeneralInfo):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
