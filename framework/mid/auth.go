package mid

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/vinoterra/winery-registry/common"
	fb "github.com/vinoterra/winery-registry/firebase"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
)

const (
	dayDuration                  = 24 * time.Hour
	MaxValidRefreshTokenDuration = 2 * dayDuration
)

// Auth errors
var (
	ErrForbidden    = errors.New("forbidden operation")
	ErrUnauthorized = errors.New("unauthorized operation")
)

// getAllowedServiceEmails lists the service accounts allowed to invoke the
// lifecycle push endpoints.
func getAllowedServiceEmails() []string {
	return []string{
		fmt.Sprintf("%s@appspot.gserviceaccount.com", common.ProjectID),
		fmt.Sprintf("service-%s@gcp-sa-pubsub.iam.gserviceaccount.com", common.ProjectNumber),
		fmt.Sprintf("%s-compute@developer.gserviceaccount.com", common.ProjectNumber),
	}
}

// AuthRequired middleware that auths requests coming from the client app.
// Every privileged mutation goes through here; there are no per-handler
// authentication checks.
func AuthRequired(conn *connection.Connection) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			token, authTime, err := fb.VerifyIDToken(ctx)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			claims := token.Claims

			ctx.Set(common.CtxKeys.Claims, claims)
			ctx.Set(common.CtxKeys.UID, token.UID)

			// If it's been too long since the user last logged in, check if
			// the token has been revoked.
			if time.Since(*authTime) > MaxValidRefreshTokenDuration {
				if err := fb.VerifyIDTokenAndCheckRevoked(ctx); err != nil {
					return web.NewRequestError(err, http.StatusUnauthorized)
				}
			}

			email, ok := claims["email"]
			if !ok {
				return web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
			}

			emailStr := email.(string)
			ctx.Set(common.CtxKeys.Email, strings.ToLower(emailStr))

			if name, ok := claims["name"]; ok {
				ctx.Set(common.CtxKeys.Name, name.(string))
			}

			l.SetLabels(map[string]string{
				"email": emailStr,
				"uid":   token.UID,
			})

			l.Printf("request executed by email [%s] uid [%s]", emailStr, token.UID)

			conn.FirestoreWithContext(ctx)

			return handler(ctx)
		}

		return h
	}

	return f
}

// ServiceAccount middleware validates Google-signed ID tokens on the platform
// lifecycle endpoints; only the project's own service accounts get through.
func ServiceAccount(conn *connection.Connection) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			authHeader := ctx.Request.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
			}

			payload, err := idtoken.Validate(ctx, strings.TrimPrefix(authHeader, "Bearer "), "")
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			email, _ := payload.Claims["email"].(string)

			var allowed bool

			for _, allowedEmail := range getAllowedServiceEmails() {
				if email == allowedEmail {
					allowed = true
					break
				}
			}

			if !allowed {
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			conn.FirestoreWithContext(ctx)

			return handler(ctx)
		}

		return h
	}

	return f
}
