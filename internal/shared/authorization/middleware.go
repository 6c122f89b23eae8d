package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// RequireRole allows the request through only when the authenticated user
// holds one of the given roles. Admin always passes.
func RequireRole(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextKeyUserRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"type": "unauthorized", "message": "authentication required"},
			})
			c.Abort()
			return
		}

		role, ok := roleValue.(UserRole)
		if !ok {
			if s, isStr := roleValue.(string); isStr {
				role = UserRole(s)
			}
		}

		if role == RoleAdmin {
			c.Next()
			return
		}

		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin is shorthand for admin-only routes.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}

// RoleFromContext extracts the authenticated role from a gin context.
func RoleFromContext(c *gin.Context) (UserRole, bool) {
	roleValue, exists := c.Get(ContextKeyUserRole)
	if !exists {
		return "", false
	}
	switch v := roleValue.(type) {
	case UserRole:
		return v, v.IsValid()
	case string:
		return ParseRole(v)
	}
	return "", false
}

// UserIDFromContext extracts the authenticated user id from a gin context.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	idValue, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := idValue.(uint)
	return id, ok
}
