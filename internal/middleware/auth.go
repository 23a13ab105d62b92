package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"MedSyncAI/internal/auth"
	"MedSyncAI/internal/session"

	"github.com/gin-gonic/gin"
)

// TokenAuthenticator validates bearer tokens, including revocation.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// AuthMiddleware guards the JSON API with a Bearer access token.
func AuthMiddleware(tokens TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			var netErr *session.NetworkError
			if errors.As(err, &netErr) {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication backend unavailable"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": session.UserMessage(err)})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
