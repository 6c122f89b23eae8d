package handlers

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/application/user/usecases"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// UserHandler handles account administration endpoints.
type UserHandler struct {
	createUserUC *usecases.CreateUserUseCase
	listUsersUC  *usecases.ListUsersUseCase
	getUserUC    *usecases.GetUserUseCase
	bcryptCost   int
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC *usecases.CreateUserUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	getUserUC *usecases.GetUserUseCase,
	bcryptCost int,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		listUsersUC:  listUsersUC,
		getUserUC:    getUserUC,
		bcryptCost:   bcryptCost,
		logger:       log,
	}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,userrole"`
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create user request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		BcryptCost: h.bcryptCost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
