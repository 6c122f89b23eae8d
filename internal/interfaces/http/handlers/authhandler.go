package handlers

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/application/user/usecases"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// AuthHandler handles login, logout and token refresh.
type AuthHandler struct {
	loginUC   *usecases.LoginUseCase
	logoutUC  *usecases.LogoutUseCase
	refreshUC *usecases.RefreshTokenUseCase
	getUserUC *usecases.GetUserUseCase
	logger    logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
	getUserUC *usecases.GetUserUseCase,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		logoutUC:  logoutUC,
		refreshUC: refreshUC,
		getUserUC: getUserUC,
		logger:    log,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken handles POST /auth/refresh.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	actorID, _, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserCommand{UserID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
