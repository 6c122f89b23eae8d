package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for dashboard and assistant routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AssistantHandler *handlers.AssistantHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupDashboardRoutes configures the role-specific overview and the
// assistant endpoints. Both resolve content from the caller's role.
func SetupDashboardRoutes(r gin.IRouter, cfg *DashboardRouteConfig) {
	r.GET("/dashboard", cfg.AuthMiddleware.RequireAuth(), cfg.DashboardHandler.Overview)

	assistant := r.Group("/assistant")
	assistant.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assistant.GET("/suggestions", cfg.AssistantHandler.Suggestions)
		assistant.GET("/quick-actions", cfg.AssistantHandler.QuickActions)
	}
}
