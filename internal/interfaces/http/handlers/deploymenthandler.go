package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"fibernet/internal/application/deployment/usecases"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// DeploymentHandler handles technician and installation task endpoints.
type DeploymentHandler struct {
	createTechnicianUC *usecases.CreateTechnicianUseCase
	listTechniciansUC  *usecases.ListTechniciansUseCase
	linkUserUC         *usecases.LinkTechnicianUserUseCase
	createTaskUC       *usecases.CreateTaskUseCase
	listTasksUC        *usecases.ListTasksUseCase
	taskDetailsUC      *usecases.TaskDetailsUseCase
	transitionUC       *usecases.TransitionTaskUseCase
	addNotesUC         *usecases.AddTaskNotesUseCase
	technicianTasksUC  *usecases.TechnicianTasksUseCase
	myTasksUC          *usecases.MyTasksUseCase
	statsUC            *usecases.DeploymentStatsUseCase
	logger             logger.Interface
}

func NewDeploymentHandler(
	createTechnicianUC *usecases.CreateTechnicianUseCase,
	listTechniciansUC *usecases.ListTechniciansUseCase,
	linkUserUC *usecases.LinkTechnicianUserUseCase,
	createTaskUC *usecases.CreateTaskUseCase,
	listTasksUC *usecases.ListTasksUseCase,
	taskDetailsUC *usecases.TaskDetailsUseCase,
	transitionUC *usecases.TransitionTaskUseCase,
	addNotesUC *usecases.AddTaskNotesUseCase,
	technicianTasksUC *usecases.TechnicianTasksUseCase,
	myTasksUC *usecases.MyTasksUseCase,
	statsUC *usecases.DeploymentStatsUseCase,
	log logger.Interface,
) *DeploymentHandler {
	return &DeploymentHandler{
		createTechnicianUC: createTechnicianUC,
		listTechniciansUC:  listTechniciansUC,
		linkUserUC:         linkUserUC,
		createTaskUC:       createTaskUC,
		listTasksUC:        listTasksUC,
		taskDetailsUC:      taskDetailsUC,
		transitionUC:       transitionUC,
		addNotesUC:         addNotesUC,
		technicianTasksUC:  technicianTasksUC,
		myTasksUC:          myTasksUC,
		statsUC:            statsUC,
		logger:             log,
	}
}

type createTechnicianRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Region  string `json:"region"`
}

// CreateTechnician handles POST /deployment/technicians.
func (h *DeploymentHandler) CreateTechnician(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create technician request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTechnicianUC.Execute(c.Request.Context(), usecases.CreateTechnicianCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		Name:      req.Name,
		Contact:   req.Contact,
		Region:    req.Region,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTechnicians handles GET /deployment/technicians.
func (h *DeploymentHandler) ListTechnicians(c *gin.Context) {
	result, err := h.listTechniciansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type linkTechnicianUserRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// LinkTechnicianUser handles POST /deployment/technicians/:id/link-user.
func (h *DeploymentHandler) LinkTechnicianUser(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	technicianID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req linkTechnicianUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.linkUserUC.Execute(c.Request.Context(), usecases.LinkTechnicianUserCommand{
		ActorID:      actorID,
		ActorRole:    actorRole,
		TechnicianID: technicianID,
		UserID:       req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type createTaskRequest struct {
	CustomerID    uint   `json:"customer_id" binding:"required"`
	TechnicianID  *uint  `json:"technician_id"`
	ScheduledDate string `json:"scheduled_date"`
	Notes         string `json:"notes"`
}

// CreateTask handles POST /deployment/tasks.
func (h *DeploymentHandler) CreateTask(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create task request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	var scheduledDate *time.Time
	if req.ScheduledDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.ScheduledDate)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("scheduled_date must be an RFC 3339 timestamp"))
			return
		}
		parsed = parsed.UTC()
		scheduledDate = &parsed
	}

	result, err := h.createTaskUC.Execute(c.Request.Context(), usecases.CreateTaskCommand{
		ActorID:       actorID,
		ActorRole:     actorRole,
		CustomerID:    req.CustomerID,
		TechnicianID:  req.TechnicianID,
		ScheduledDate: scheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTasks handles GET /deployment/tasks.
func (h *DeploymentHandler) ListTasks(c *gin.Context) {
	technicianID, err := uintQuery(c, "technician_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	customerID, err := uintQuery(c, "customer_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTasksUC.Execute(c.Request.Context(), usecases.ListTasksCommand{
		Status:       c.Query("status"),
		TechnicianID: technicianID,
		CustomerID:   customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// TaskDetails handles GET /deployment/tasks/:id.
func (h *DeploymentHandler) TaskDetails(c *gin.Context) {
	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.taskDetailsUC.Execute(c.Request.Context(), usecases.TaskDetailsCommand{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type transitionTaskRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// TransitionTask handles POST /deployment/tasks/:id/transition.
func (h *DeploymentHandler) TransitionTask(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req transitionTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid transition task request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.transitionUC.Execute(c.Request.Context(), usecases.TransitionTaskCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		TaskID:    taskID,
		NewStatus: req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type addTaskNotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// AddTaskNotes handles POST /deployment/tasks/:id/notes.
func (h *DeploymentHandler) AddTaskNotes(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	taskID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addTaskNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addNotesUC.Execute(c.Request.Context(), usecases.AddTaskNotesCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		TaskID:    taskID,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// TechnicianTasks handles GET /deployment/technicians/:id/tasks.
func (h *DeploymentHandler) TechnicianTasks(c *gin.Context) {
	technicianID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.technicianTasksUC.Execute(c.Request.Context(), usecases.TechnicianTasksCommand{TechnicianID: technicianID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// MyTasks handles GET /deployment/my-tasks for technician accounts.
func (h *DeploymentHandler) MyTasks(c *gin.Context) {
	actorID, _, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.myTasksUC.Execute(c.Request.Context(), usecases.MyTasksCommand{CallerUserID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Stats handles GET /deployment/stats.
func (h *DeploymentHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
