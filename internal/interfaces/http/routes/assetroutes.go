package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
	"fibernet/internal/shared/authorization"
)

// AssetRouteConfig holds dependencies for inventory routes.
type AssetRouteConfig struct {
	AssetHandler     *handlers.AssetHandler
	LifecycleHandler *handlers.LifecycleHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupAssetRoutes configures inventory and asset lifecycle endpoints.
// Reads are open to any authenticated user; mutations are gated by role.
func SetupAssetRoutes(r gin.IRouter, cfg *AssetRouteConfig) {
	assets := r.Group("/assets")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.POST("", authorization.RequireRole(authorization.RolePlanner), cfg.AssetHandler.RegisterAsset)
		assets.GET("", cfg.AssetHandler.ListAssets)

		// Named endpoints before /:id so gin does not treat them as IDs.
		assets.GET("/maintenance-due", cfg.AssetHandler.MaintenanceDue)
		assets.GET("/stats/utilization", cfg.AssetHandler.UtilizationStats)

		assets.GET("/:id", cfg.AssetHandler.GetAsset)
		assets.PUT("/:id", authorization.RequireRole(authorization.RolePlanner), cfg.AssetHandler.UpdateAsset)
		assets.GET("/:id/history", cfg.AssetHandler.AssetHistory)

		assets.POST("/:id/mark-faulty",
			authorization.RequireRole(authorization.RolePlanner, authorization.RoleTechnician),
			cfg.LifecycleHandler.MarkAssetFaulty)
		assets.POST("/:id/retire",
			authorization.RequireRole(authorization.RolePlanner),
			cfg.LifecycleHandler.RetireAsset)
		assets.POST("/:id/reassign",
			authorization.RequireRole(authorization.RolePlanner, authorization.RoleSupportAgent),
			cfg.LifecycleHandler.ReassignAsset)
		assets.POST("/:id/replace",
			authorization.RequireRole(authorization.RolePlanner, authorization.RoleTechnician),
			cfg.LifecycleHandler.ReplaceFaultyAsset)
	}
}
