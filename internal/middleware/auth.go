package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/token"
)

// UserChecker confirms a token's subject still exists.
type UserChecker interface {
	UserExists(ctx context.Context, id uint) (bool, error)
}

// AuthMiddleware requires a valid Bearer access token.
func AuthMiddleware(jwtSecret string, users UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(parts[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		if users != nil {
			ok, err := users.UserExists(c.Request.Context(), claims.UserID)
			if err != nil {
				responses.SendError(c, http.StatusInternalServerError, "Database unavailable.")
				return
			}
			if !ok {
				responses.Unauthorized(c, "User not found")
				return
			}
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Set(common.ContextUsernameKey, claims.Username)
		c.Next()
	}
}
