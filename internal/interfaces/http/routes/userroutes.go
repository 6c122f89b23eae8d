package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
	"fibernet/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for account management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures account administration. Admin only.
func SetupUserRoutes(r gin.IRouter, cfg *UserRouteConfig) {
	users := r.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.POST("", cfg.UserHandler.CreateUser)
		users.GET("", cfg.UserHandler.ListUsers)
		users.GET("/:id", cfg.UserHandler.GetUser)
	}
}
