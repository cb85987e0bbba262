package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/copilot-demo/task-manager/internal/constants"
	apierrors "github.com/copilot-demo/task-manager/internal/errors"
	"github.com/copilot-demo/task-manager/internal/models"
	"github.com/copilot-demo/task-manager/internal/services"
)

// RequireAuth validates the bearer token and stores the resolved actor in the
// request context. Requests without a valid token are rejected with 401.
func RequireAuth(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		actor, err := tokens.ValidateAccessToken(token)
		if err != nil {
			apierrors.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, actor.ID)
		c.Set(constants.ContextKeyRole, actor.Role)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose actor holds none of the
// given roles. This is the route-level 403 gate, distinct from the
// service-level not-found masking.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "")
		c.Abort()
	}
}

// GetActor retrieves the authenticated actor from the request context.
func GetActor(c *gin.Context) (services.Actor, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return services.Actor{}, false
	}
	userID, ok := rawID.(uuid.UUID)
	if !ok {
		return services.Actor{}, false
	}

	rawRole, exists := c.Get(constants.ContextKeyRole)
	if !exists {
		return services.Actor{}, false
	}
	role, ok := rawRole.(models.UserRole)
	if !ok {
		return services.Actor{}, false
	}

	return services.Actor{ID: userID, Role: role}, true
}
