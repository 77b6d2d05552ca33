package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the identity token on protected routes.
const TokenHeader = "x-auth-token"

const userIDKey = "userID"

type userIDContextKey struct{}

// TokenVerifier resolves a token to the user id it was issued for
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware rejects requests without a valid identity token and
// attaches the token's user id otherwise.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := strings.TrimSpace(ctx.GetHeader(TokenHeader))
		if token == "" {
			abortWithError(ctx, http.StatusUnauthorized, services.ErrNoToken.Msg)
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			abortWithError(ctx, http.StatusUnauthorized, services.ErrTokenInvalid.Msg)
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Request = ctx.Request.WithContext(context.WithValue(ctx.Request.Context(), userIDContextKey{}, userID))
		ctx.Next()
	}
}

// UserID returns the authenticated user id, or "" on public routes.
func UserID(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}

// UserIDFromContext returns the authenticated user id stored on a request context.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(userIDContextKey{}).(string)
	return value
}

func abortWithError(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"errors": []services.FieldError{{Msg: msg}},
	})
}
