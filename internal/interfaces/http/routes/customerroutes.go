package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
	"fibernet/internal/shared/authorization"
)

// CustomerRouteConfig holds dependencies for customer routes.
type CustomerRouteConfig struct {
	CustomerHandler  *handlers.CustomerHandler
	LifecycleHandler *handlers.LifecycleHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupCustomerRoutes configures customer listing, onboarding and the
// post-onboarding lifecycle transitions.
func SetupCustomerRoutes(r gin.IRouter, cfg *CustomerRouteConfig) {
	customers := r.Group("/customers")
	customers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		frontline := authorization.RequireRole(authorization.RolePlanner, authorization.RoleSupportAgent)

		customers.GET("", cfg.CustomerHandler.ListCustomers)
		customers.POST("/onboard", frontline, cfg.CustomerHandler.OnboardCustomer)

		// Named endpoint before /:id so gin does not treat it as an ID.
		customers.GET("/inactive", cfg.LifecycleHandler.InactiveCustomers)

		customers.GET("/:id", cfg.CustomerHandler.GetCustomer)
		customers.PUT("/:id", frontline, cfg.CustomerHandler.UpdateCustomer)
		customers.POST("/:id/deactivate", frontline, cfg.LifecycleHandler.DeactivateCustomer)
		customers.POST("/:id/reactivate", frontline, cfg.LifecycleHandler.ReactivateCustomer)
		customers.POST("/:id/reclaim-assets", frontline, cfg.LifecycleHandler.ReclaimAssets)
	}

	lifecycle := r.Group("/lifecycle")
	lifecycle.Use(cfg.AuthMiddleware.RequireAuth())
	{
		frontline := authorization.RequireRole(authorization.RolePlanner, authorization.RoleSupportAgent)

		lifecycle.GET("/summary", cfg.LifecycleHandler.Summary)
		lifecycle.POST("/bulk-reclaim", frontline, cfg.LifecycleHandler.BulkReclaim)
	}
}
