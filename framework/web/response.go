package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinoterra/winery-registry/internal"
)

// Respond converts a Go value to JSON and sends it to the client with the
// corresponding status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	v, ok := internal.DataFromContext(ctx)
	if ok {
		v.StatusCode = statusCode
	}

	// If there is nothing to marshal then set status code and return.
	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondError sends an error response back to the client. The response body
// carries only the closed code set plus the wrapped error's message; detail
// beyond that never leaves the service.
func RespondError(ctx *gin.Context, err error) error {
	if webErr, ok := err.(*Error); ok {
		errResponse := ErrorResponse{
			Error: webErr.Err.Error(),
			Code:  webErr.Code(),
		}

		return Respond(ctx, errResponse, webErr.Status)
	}

	errResponse := ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
		Code:  CodeInternal,
	}

	return Respond(ctx, errResponse, http.StatusInternalServerError)
}
