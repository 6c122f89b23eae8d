// Package routes registers the HTTP endpoints on the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures login, logout and token refresh.
func SetupAuthRoutes(r gin.IRouter, cfg *AuthRouteConfig) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)

		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
