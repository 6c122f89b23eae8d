package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
	"fibernet/internal/shared/authorization"
)

// AuditRouteConfig holds dependencies for audit trail routes.
type AuditRouteConfig struct {
	AuditHandler   *handlers.AuditHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuditRoutes configures the audit trail endpoints. Admin only.
func SetupAuditRoutes(r gin.IRouter, cfg *AuditRouteConfig) {
	audit := r.Group("/audit")
	audit.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		audit.GET("/entries", cfg.AuditHandler.QueryEntries)
		audit.GET("/summary", cfg.AuditHandler.Summary)
		audit.GET("/export", cfg.AuditHandler.Export)
		audit.GET("/users/:id/activity", cfg.AuditHandler.UserActivity)
	}
}
