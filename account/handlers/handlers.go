package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/account/service"
	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	taxonomyDal "github.com/vinoterra/winery-registry/taxonomy/dal"
)

type Account struct {
	loggerProvider logger.Provider
	service        service.AccountService
}

func NewAccount(log logger.Provider, conn *connection.Connection) *Account {
	return &Account{
		loggerProvider: log,
		service:        service.NewAccountService(log, conn),
	}
}

type createUserResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Tier  string `json:"tier"`
	Level int64  `json:"level"`
}

type updatePasswordRequest struct {
	Password string `json:"password"`
}

type isAdminResponse struct {
	Admin bool `json:"admin"`
}

func (h *Account) CreateNewUser(ctx *gin.Context) error {
	var req service.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	account, err := h.service.CreateUser(ctx, &req)
	if err != nil {
		return translateError(err)
	}

	response := createUserResponse{
		UID:   account.UID,
		Email: account.Email,
		Tier:  req.Tier,
		Level: req.Level,
	}

	return web.Respond(ctx, response, http.StatusCreated)
}

func (h *Account) ListAllUsers(ctx *gin.Context) error {
	accounts, err := h.service.ListUsers(ctx)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, accounts, http.StatusOK)
}

func (h *Account) DisableUser(ctx *gin.Context) error {
	if err := h.service.DisableUser(ctx, ctx.Param("uid")); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Account) DeleteUser(ctx *gin.Context) error {
	if err := h.service.DeleteUser(ctx, ctx.Param("uid")); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Account) UpdateUserPassword(ctx *gin.Context) error {
	var req updatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.UpdatePassword(ctx, ctx.Param("uid"), req.Password); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Account) IsUserAdmin(ctx *gin.Context) error {
	email := ctx.Query("email")

	admin, err := h.service.IsAdmin(ctx, email)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, isAdminResponse{Admin: admin}, http.StatusOK)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyEmail),
		errors.Is(err, service.ErrEmptyPassword),
		errors.Is(err, service.ErrEmptyUID):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, taxonomyDal.ErrNoAdminSet):
		return web.NewRequestError(err, http.StatusInternalServerError)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
