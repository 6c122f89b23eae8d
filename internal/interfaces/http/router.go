// Package http assembles the gin engine from configuration and the
// database handle, wiring repositories, usecases and handlers.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	assetusecases "fibernet/internal/application/asset/usecases"
	assistantusecases "fibernet/internal/application/assistant/usecases"
	auditapp "fibernet/internal/application/audit"
	auditusecases "fibernet/internal/application/audit/usecases"
	customerusecases "fibernet/internal/application/customer/usecases"
	dashboardusecases "fibernet/internal/application/dashboard/usecases"
	deploymentusecases "fibernet/internal/application/deployment/usecases"
	lifecycleusecases "fibernet/internal/application/lifecycle/usecases"
	onboardingusecases "fibernet/internal/application/onboarding/usecases"
	topologyusecases "fibernet/internal/application/topology/usecases"
	userusecases "fibernet/internal/application/user/usecases"
	"fibernet/internal/infrastructure/auth"
	"fibernet/internal/infrastructure/config"
	"fibernet/internal/infrastructure/repository"
	"fibernet/internal/interfaces/http/handlers"
	"fibernet/internal/interfaces/http/middleware"
	"fibernet/internal/interfaces/http/routes"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/logger"
)

// Router wraps the configured gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface. The cache may be nil, which
// disables dashboard caching.
func NewRouter(cfg *config.Config, gdb *gorm.DB, cache dashboardusecases.Cache, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers.RegisterValidators()

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))

	allowedOrigins := cfg.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	engine.Use(middleware.CORS(allowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	// Repositories share the gorm handle; transactions ride the context.
	assetRepo := repository.NewAssetRepository(gdb)
	assignmentRepo := repository.NewAssignmentRepository(gdb)
	customerRepo := repository.NewCustomerRepository(gdb)
	headendRepo := repository.NewHeadendRepository(gdb)
	fdhRepo := repository.NewFDHRepository(gdb)
	splitterRepo := repository.NewSplitterRepository(gdb)
	taskRepo := repository.NewTaskRepository(gdb)
	technicianRepo := repository.NewTechnicianRepository(gdb)
	auditRepo := repository.NewAuditRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)

	txManager := db.NewTransactionManager(gdb)
	recorder := auditapp.NewRecorder(auditRepo)
	directory := userusecases.NewDirectory(userRepo)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessExpMinutes,
		cfg.Auth.RefreshExpDays,
	)

	cacheTTL := time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second

	// User and auth usecases.
	loginUC := userusecases.NewLoginUseCase(userRepo, technicianRepo, jwtService, recorder, txManager, log)
	logoutUC := userusecases.NewLogoutUseCase(recorder, log)
	refreshUC := userusecases.NewRefreshTokenUseCase(jwtService, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, recorder, txManager, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)

	// Inventory usecases.
	registerAssetUC := assetusecases.NewRegisterAssetUseCase(assetRepo, recorder, txManager, log)
	updateAssetUC := assetusecases.NewUpdateAssetUseCase(assetRepo, recorder, txManager, log)
	listAssetsUC := assetusecases.NewListAssetsUseCase(assetRepo, log)
	getAssetUC := assetusecases.NewGetAssetUseCase(assetRepo, log)
	assetHistoryUC := assetusecases.NewAssetHistoryUseCase(assetRepo, assignmentRepo, log)
	utilizationUC := assetusecases.NewUtilizationStatsUseCase(assetRepo, log)
	maintenanceUC := assetusecases.NewMaintenanceDueUseCase(assetRepo, log)

	// Topology usecases.
	createNodesUC := topologyusecases.NewCreateNodesUseCase(headendRepo, fdhRepo, splitterRepo, recorder, txManager, log)
	listNodesUC := topologyusecases.NewListNodesUseCase(headendRepo, fdhRepo, splitterRepo, log)
	availablePortsUC := topologyusecases.NewAvailablePortsUseCase(splitterRepo, customerRepo, log)
	fdhTopologyUC := topologyusecases.NewFDHTopologyUseCase(fdhRepo, splitterRepo, customerRepo, log)
	customerTopologyUC := topologyusecases.NewCustomerTopologyUseCase(customerRepo, splitterRepo, fdhRepo, headendRepo, assetRepo, log)
	searchDeviceUC := topologyusecases.NewSearchDeviceUseCase(assetRepo, assignmentRepo, customerRepo, log)

	// Customer and onboarding usecases.
	listCustomersUC := customerusecases.NewListCustomersUseCase(customerRepo, log)
	getCustomerUC := customerusecases.NewGetCustomerUseCase(customerRepo, log)
	updateCustomerUC := customerusecases.NewUpdateCustomerUseCase(customerRepo, recorder, txManager, log)
	onboardUC := onboardingusecases.NewOnboardCustomerUseCase(customerRepo, splitterRepo, assetRepo, assignmentRepo, recorder, txManager, log)

	// Lifecycle usecases.
	reclaimUC := lifecycleusecases.NewReclaimAssetsUseCase(customerRepo, assetRepo, assignmentRepo, recorder, txManager, log)
	bulkReclaimUC := lifecycleusecases.NewBulkReclaimUseCase(reclaimUC, log)
	reassignUC := lifecycleusecases.NewReassignAssetUseCase(customerRepo, assetRepo, assignmentRepo, recorder, txManager, log)
	replaceUC := lifecycleusecases.NewReplaceFaultyAssetUseCase(customerRepo, assetRepo, assignmentRepo, recorder, txManager, log)
	markFaultyUC := lifecycleusecases.NewMarkAssetFaultyUseCase(customerRepo, assetRepo, assignmentRepo, recorder, txManager, log)
	retireUC := lifecycleusecases.NewRetireAssetUseCase(assetRepo, recorder, txManager, log)
	deactivateUC := lifecycleusecases.NewDeactivateCustomerUseCase(customerRepo, assetRepo, assignmentRepo, recorder, txManager, log)
	reactivateUC := lifecycleusecases.NewReactivateCustomerUseCase(customerRepo, recorder, txManager, log)
	inactiveUC := lifecycleusecases.NewInactiveCustomersUseCase(customerRepo, assignmentRepo, log)
	lifecycleSummaryUC := lifecycleusecases.NewLifecycleSummaryUseCase(customerRepo, assetRepo, assignmentRepo, log)

	// Deployment usecases.
	createTechnicianUC := deploymentusecases.NewCreateTechnicianUseCase(technicianRepo, recorder, txManager, log)
	listTechniciansUC := deploymentusecases.NewListTechniciansUseCase(technicianRepo, log)
	linkUserUC := deploymentusecases.NewLinkTechnicianUserUseCase(technicianRepo, userRepo, recorder, txManager, log)
	createTaskUC := deploymentusecases.NewCreateTaskUseCase(taskRepo, technicianRepo, customerRepo, recorder, txManager, log)
	listTasksUC := deploymentusecases.NewListTasksUseCase(taskRepo, log)
	taskDetailsUC := deploymentusecases.NewTaskDetailsUseCase(taskRepo, technicianRepo, customerRepo, assetRepo, splitterRepo, fdhRepo, log)
	transitionUC := deploymentusecases.NewTransitionTaskUseCase(taskRepo, technicianRepo, customerRepo, recorder, txManager, log)
	addNotesUC := deploymentusecases.NewAddTaskNotesUseCase(taskRepo, recorder, txManager, log)
	technicianTasksUC := deploymentusecases.NewTechnicianTasksUseCase(taskRepo, technicianRepo, log)
	myTasksUC := deploymentusecases.NewMyTasksUseCase(taskRepo, technicianRepo, log)
	deploymentStatsUC := deploymentusecases.NewDeploymentStatsUseCase(taskRepo, log)

	// Audit usecases.
	queryEntriesUC := auditusecases.NewQueryEntriesUseCase(auditRepo, directory, log)
	userActivityUC := auditusecases.NewUserActivityUseCase(auditRepo, directory, log)
	auditSummaryUC := auditusecases.NewSummaryUseCase(auditRepo, directory, log)
	exportUC := auditusecases.NewExportEntriesUseCase(queryEntriesUC, log)

	// Dashboards and assistant.
	adminDashboardUC := dashboardusecases.NewAdminDashboardUseCase(assetRepo, customerRepo, taskRepo, auditRepo, directory, cache, cacheTTL, log)
	plannerDashboardUC := dashboardusecases.NewPlannerDashboardUseCase(assetRepo, customerRepo, fdhRepo, splitterRepo, cache, cacheTTL, log)
	technicianDashboardUC := dashboardusecases.NewTechnicianDashboardUseCase(taskRepo, technicianRepo, cache, cacheTTL, log)
	supportDashboardUC := dashboardusecases.NewSupportDashboardUseCase(customerRepo, taskRepo, cache, cacheTTL, log)
	suggestionsUC := assistantusecases.NewRoleSuggestionsUseCase(log)
	quickActionsUC := assistantusecases.NewQuickActionsUseCase(assetRepo, customerRepo, taskRepo, log)

	// Handlers.
	authHandler := handlers.NewAuthHandler(loginUC, logoutUC, refreshUC, getUserUC, log)
	userHandler := handlers.NewUserHandler(createUserUC, listUsersUC, getUserUC, cfg.Auth.BcryptCost, log)
	assetHandler := handlers.NewAssetHandler(registerAssetUC, updateAssetUC, listAssetsUC, getAssetUC, assetHistoryUC, utilizationUC, maintenanceUC, log)
	topologyHandler := handlers.NewTopologyHandler(createNodesUC, listNodesUC, availablePortsUC, fdhTopologyUC, customerTopologyUC, searchDeviceUC, log)
	customerHandler := handlers.NewCustomerHandler(listCustomersUC, getCustomerUC, updateCustomerUC, onboardUC, log)
	lifecycleHandler := handlers.NewLifecycleHandler(reclaimUC, bulkReclaimUC, reassignUC, replaceUC, markFaultyUC, retireUC, deactivateUC, reactivateUC, inactiveUC, lifecycleSummaryUC, log)
	deploymentHandler := handlers.NewDeploymentHandler(createTechnicianUC, listTechniciansUC, linkUserUC, createTaskUC, listTasksUC, taskDetailsUC, transitionUC, addNotesUC, technicianTasksUC, myTasksUC, deploymentStatsUC, log)
	auditHandler := handlers.NewAuditHandler(queryEntriesUC, userActivityUC, auditSummaryUC, exportUC, log)
	dashboardHandler := handlers.NewDashboardHandler(adminDashboardUC, plannerDashboardUC, technicianDashboardUC, supportDashboardUC, log)
	assistantHandler := handlers.NewAssistantHandler(suggestionsUC, quickActionsUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupAssetRoutes(api, &routes.AssetRouteConfig{
		AssetHandler:     assetHandler,
		LifecycleHandler: lifecycleHandler,
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupTopologyRoutes(api, &routes.TopologyRouteConfig{
		TopologyHandler: topologyHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupCustomerRoutes(api, &routes.CustomerRouteConfig{
		CustomerHandler:  customerHandler,
		LifecycleHandler: lifecycleHandler,
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupDeploymentRoutes(api, &routes.DeploymentRouteConfig{
		DeploymentHandler: deploymentHandler,
		AuthMiddleware:    authMiddleware,
	})
	routes.SetupAuditRoutes(api, &routes.AuditRouteConfig{
		AuditHandler:   auditHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: dashboardHandler,
		AssistantHandler: assistantHandler,
		AuthMiddleware:   authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
