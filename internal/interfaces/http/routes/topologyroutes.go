package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
	"fibernet/internal/shared/authorization"
)

// TopologyRouteConfig holds dependencies for network hierarchy routes.
type TopologyRouteConfig struct {
	TopologyHandler *handlers.TopologyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupTopologyRoutes configures the headend/FDH/splitter hierarchy.
// Node creation is planner work; reads are open to authenticated users.
func SetupTopologyRoutes(r gin.IRouter, cfg *TopologyRouteConfig) {
	topology := r.Group("/topology")
	topology.Use(cfg.AuthMiddleware.RequireAuth())
	{
		planner := authorization.RequireRole(authorization.RolePlanner)

		topology.POST("/headends", planner, cfg.TopologyHandler.CreateHeadend)
		topology.POST("/fdhs", planner, cfg.TopologyHandler.CreateFDH)
		topology.POST("/splitters", planner, cfg.TopologyHandler.CreateSplitter)

		topology.GET("/headends", cfg.TopologyHandler.ListHeadends)
		topology.GET("/fdhs", cfg.TopologyHandler.ListFDHs)
		topology.GET("/splitters", cfg.TopologyHandler.ListSplitters)

		topology.GET("/splitters/:id/available-ports", cfg.TopologyHandler.AvailablePorts)
		topology.GET("/fdhs/:id/tree", cfg.TopologyHandler.FDHTopology)
		topology.GET("/customers/:id", cfg.TopologyHandler.CustomerTopology)
		topology.GET("/devices/search", cfg.TopologyHandler.SearchDevice)
	}
}
