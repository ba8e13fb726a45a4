package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/framework/web"
)

func healthCheck(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}
