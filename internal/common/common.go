package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/league/internal/database"
	"github.com/DhavalSuthar-24/league/pkg/logger"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/validator"
)

const (
	// ContextUserIDKey holds the authenticated user's id.
	ContextUserIDKey = "userID"
	// ContextUsernameKey holds the authenticated user's login.
	ContextUsernameKey = "username"
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := v.(uint)
	if !ok {
		return 0, errors.New("user ID in context is not of type uint")
	}
	return userID, nil
}

// BindJSON binds the body into req and answers 400 with field details on failure.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return false
	}
	return true
}

// RespondStoreError maps a repository error to an HTTP answer. Constraint
// violations are the caller's fault; anything else is logged and hidden.
func RespondStoreError(c *gin.Context, err error, action string) {
	switch {
	case database.IsUniqueViolation(err):
		responses.Conflict(c, action+": resource already exists")
	case database.IsForeignKeyViolation(err):
		responses.BadRequest(c, action+": referenced resource does not exist")
	default:
		logger.FromContext(c.Request.Context()).Error(action, "error", err, "path", c.FullPath())
		responses.SendError(c, http.StatusInternalServerError, "Database unavailable.")
	}
}
