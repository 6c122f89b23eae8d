// Package middleware holds the gin middleware for the HTTP API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fibernet/internal/infrastructure/auth"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, logger: log}
}

// RequireAuth validates the bearer token and stores the caller identity
// on the context for handlers and role checks downstream.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, string(errors.ErrorTypeUnauthorized), "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, string(errors.ErrorTypeUnauthorized), "invalid authorization header format")
			c.Abort()
			return
		}

		userID, role, err := m.jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, string(errors.ErrorTypeUnauthorized), "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(authorization.ContextKeyUserID, userID)
		c.Set(authorization.ContextKeyUserRole, authorization.UserRole(role))
		c.Next()
	}
}
