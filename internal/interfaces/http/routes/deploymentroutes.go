package routes

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
	"fibernet/internal/shared/authorization"
)

// DeploymentRouteConfig holds dependencies for field deployment routes.
type DeploymentRouteConfig struct {
	DeploymentHandler *handlers.DeploymentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupDeploymentRoutes configures technician and installation task
// endpoints. Task transitions are open to technicians so field crews
// can report progress from their own accounts.
func SetupDeploymentRoutes(r gin.IRouter, cfg *DeploymentRouteConfig) {
	deployment := r.Group("/deployment")
	deployment.Use(cfg.AuthMiddleware.RequireAuth())
	{
		scheduler := authorization.RequireRole(authorization.RolePlanner, authorization.RoleSupportAgent)
		fieldCrew := authorization.RequireRole(
			authorization.RolePlanner,
			authorization.RoleSupportAgent,
			authorization.RoleTechnician,
		)

		deployment.POST("/technicians", scheduler, cfg.DeploymentHandler.CreateTechnician)
		deployment.GET("/technicians", cfg.DeploymentHandler.ListTechnicians)
		deployment.POST("/technicians/:id/link-user", authorization.RequireAdmin(), cfg.DeploymentHandler.LinkTechnicianUser)
		deployment.GET("/technicians/:id/tasks", cfg.DeploymentHandler.TechnicianTasks)

		deployment.POST("/tasks", scheduler, cfg.DeploymentHandler.CreateTask)
		deployment.GET("/tasks", cfg.DeploymentHandler.ListTasks)
		deployment.GET("/tasks/:id", cfg.DeploymentHandler.TaskDetails)
		deployment.POST("/tasks/:id/transition", fieldCrew, cfg.DeploymentHandler.TransitionTask)
		deployment.POST("/tasks/:id/notes", fieldCrew, cfg.DeploymentHandler.AddTaskNotes)

		deployment.GET("/my-tasks", authorization.RequireRole(authorization.RoleTechnician), cfg.DeploymentHandler.MyTasks)
		deployment.GET("/stats", cfg.DeploymentHandler.Stats)
	}
}
