package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/taxonomy/domain"
	"github.com/vinoterra/winery-registry/taxonomy/service"
)

type Taxonomy struct {
	l   logger.Provider
	svc service.TaxonomyService
}

func NewTaxonomy(l logger.Provider, conn *connection.Connection) *Taxonomy {
	return &Taxonomy{
		l:   l,
		svc: service.NewTaxonomyService(l, conn),
	}
}

type listResponse struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

type setListRequest struct {
	Values []string `json:"values"`
}

func (h *Taxonomy) GetList(ctx *gin.Context) error {
	key := ctx.Param("key")

	values, err := h.svc.GetList(ctx, key)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, listResponse{Key: key, Values: values}, http.StatusOK)
}

func (h *Taxonomy) SetList(ctx *gin.Context) error {
	key := ctx.Param("key")

	var req setListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.svc.SetList(ctx, key, req.Values); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, listResponse{Key: key, Values: req.Values}, http.StatusOK)
}

func (h *Taxonomy) GetLevelMap(ctx *gin.Context) error {
	levelMap, err := h.svc.GetLevelMap(ctx)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{"level": levelMap}, http.StatusOK)
}

func (h *Taxonomy) SetLevelMap(ctx *gin.Context) error {
	var req domain.LevelMap
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.svc.SetLevelMap(ctx, req); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{"message": "level map created successfully"}, http.StatusOK)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownList), errors.Is(err, service.ErrIncompleteLevelMap):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
