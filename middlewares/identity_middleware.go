package middlewares

import (
	"net/http"
	"strings"

	"gin-crud-api/config"
	"gin-crud-api/constants"
	"gin-crud-api/services"

	"github.com/gin-gonic/gin"
)

// CurrentUser resolves the requester and stores it in the context under
// "user". In bearer mode a valid, non-revoked token is required; in dev mode
// any credential is ignored and the fixed identity is used.
func CurrentUser(authService services.IAuthService, authMode string) gin.HandlerFunc {
	if authMode == config.AuthModeBearer {
		return bearerIdentity(authService)
	}
	return fixedIdentity(authService)
}

func bearerIdentity(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil || user == nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

func fixedIdentity(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := authService.ResolveFixedIdentity()
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}
