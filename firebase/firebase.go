package firebase

import (
	"errors"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

var errNoAuthHeader = errors.New("no Authorization header found")
var errInvalidAuthHeader = errors.New("invalid Authorization header found")

func tokenAuthTime(token *auth.Token) (*time.Time, error) {
	if authTime, prs := token.Claims["auth_time"]; prs {
		if v, ok := authTime.(float64); ok {
			t := time.Unix(int64(v), 0)
			return &t, nil
		}
	}

	return nil, errors.New("invalid auth token")
}

func bearerToken(ctx *gin.Context) (string, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader == "" {
		return "", errNoAuthHeader
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errInvalidAuthHeader
	}

	return strings.Split(authHeader, " ")[1], nil
}

// VerifyIDToken verifies the request authorization header against the app's
// identity provider and returns the decoded token with its auth time.
func VerifyIDToken(ctx *gin.Context) (*auth.Token, *time.Time, error) {
	idToken, err := bearerToken(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, err := App.Auth(ctx)
	if err != nil {
		return nil, nil, err
	}

	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, nil, err
	}

	authTime, err := tokenAuthTime(token)
	if err != nil {
		return nil, nil, err
	}

	return token, authTime, nil
}

// VerifyIDTokenAndCheckRevoked verifies the request authorization header and
// additionally checks the token against the revocation list.
func VerifyIDTokenAndCheckRevoked(ctx *gin.Context) error {
	idToken, err := bearerToken(ctx)
	if err != nil {
		return err
	}

	client, err := App.Auth(ctx)
	if err != nil {
		return err
	}

	if _, err := client.VerifyIDTokenAndCheckRevoked(ctx, idToken); err != nil {
		return err
	}

	return nil
}
