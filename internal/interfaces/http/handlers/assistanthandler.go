package handlers

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/application/assistant/usecases"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// AssistantHandler serves curated guidance for the caller's role.
type AssistantHandler struct {
	suggestionsUC  *usecases.RoleSuggestionsUseCase
	quickActionsUC *usecases.QuickActionsUseCase
	logger         logger.Interface
}

func NewAssistantHandler(
	suggestionsUC *usecases.RoleSuggestionsUseCase,
	quickActionsUC *usecases.QuickActionsUseCase,
	log logger.Interface,
) *AssistantHandler {
	return &AssistantHandler{
		suggestionsUC:  suggestionsUC,
		quickActionsUC: quickActionsUC,
		logger:         log,
	}
}

// Suggestions handles GET /assistant/suggestions.
func (h *AssistantHandler) Suggestions(c *gin.Context) {
	_, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.suggestionsUC.Execute(c.Request.Context(), usecases.RoleSuggestionsCommand{Role: actorRole})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// QuickActions handles GET /assistant/quick-actions.
func (h *AssistantHandler) QuickActions(c *gin.Context) {
	_, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.quickActionsUC.Execute(c.Request.Context(), usecases.QuickActionsCommand{Role: actorRole})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
