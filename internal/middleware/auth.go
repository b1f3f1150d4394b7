package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"syndicpro/internal/auth"
	"syndicpro/internal/logger"
	"syndicpro/internal/models"
	"syndicpro/pkg/apperrors"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// Auth validates the bearer token and stores the caller's identity on
// the Gin context.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Missing or malformed Authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireRoles allows only callers whose role is in roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		userRole, _ := role.(models.UserRole)
		for _, allowed := range roles {
			if userRole == allowed {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
		c.Abort()
	}
}

// CallerID returns the authenticated user id stored by Auth.
func CallerID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	userID, ok := id.(string)
	return userID, ok && userID != ""
}
