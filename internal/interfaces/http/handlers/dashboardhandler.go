package handlers

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/application/dashboard/usecases"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// DashboardHandler serves the role-specific overview for the caller.
type DashboardHandler struct {
	adminUC      *usecases.AdminDashboardUseCase
	plannerUC    *usecases.PlannerDashboardUseCase
	technicianUC *usecases.TechnicianDashboardUseCase
	supportUC    *usecases.SupportDashboardUseCase
	logger       logger.Interface
}

func NewDashboardHandler(
	adminUC *usecases.AdminDashboardUseCase,
	plannerUC *usecases.PlannerDashboardUseCase,
	technicianUC *usecases.TechnicianDashboardUseCase,
	supportUC *usecases.SupportDashboardUseCase,
	log logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		adminUC:      adminUC,
		plannerUC:    plannerUC,
		technicianUC: technicianUC,
		supportUC:    supportUC,
		logger:       log,
	}
}

// Overview handles GET /dashboard and dispatches on the caller's role.
func (h *DashboardHandler) Overview(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	switch authorization.UserRole(actorRole) {
	case authorization.RoleAdmin:
		result, err := h.adminUC.Execute(ctx)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, result)
	case authorization.RolePlanner:
		result, err := h.plannerUC.Execute(ctx)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, result)
	case authorization.RoleTechnician:
		result, err := h.technicianUC.Execute(ctx, usecases.TechnicianDashboardCommand{ActorID: actorID})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, result)
	case authorization.RoleSupportAgent:
		result, err := h.supportUC.Execute(ctx)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, result)
	default:
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("no dashboard for this role"))
	}
}
