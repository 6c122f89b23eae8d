package handlers

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/application/asset/usecases"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// AssetHandler handles inventory endpoints for network equipment.
type AssetHandler struct {
	registerUC    *usecases.RegisterAssetUseCase
	updateUC      *usecases.UpdateAssetUseCase
	listUC        *usecases.ListAssetsUseCase
	getUC         *usecases.GetAssetUseCase
	historyUC     *usecases.AssetHistoryUseCase
	utilizationUC *usecases.UtilizationStatsUseCase
	maintenanceUC *usecases.MaintenanceDueUseCase
	logger        logger.Interface
}

func NewAssetHandler(
	registerUC *usecases.RegisterAssetUseCase,
	updateUC *usecases.UpdateAssetUseCase,
	listUC *usecases.ListAssetsUseCase,
	getUC *usecases.GetAssetUseCase,
	historyUC *usecases.AssetHistoryUseCase,
	utilizationUC *usecases.UtilizationStatsUseCase,
	maintenanceUC *usecases.MaintenanceDueUseCase,
	log logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		registerUC:    registerUC,
		updateUC:      updateUC,
		listUC:        listUC,
		getUC:         getUC,
		historyUC:     historyUC,
		utilizationUC: utilizationUC,
		maintenanceUC: maintenanceUC,
		logger:        log,
	}
}

type registerAssetRequest struct {
	Type         string `json:"type" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
	Location     string `json:"location"`
}

// RegisterAsset handles POST /assets.
func (h *AssetHandler) RegisterAsset(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req registerAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register asset request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterAssetCommand{
		ActorID:      actorID,
		ActorRole:    actorRole,
		Type:         req.Type,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

type updateAssetRequest struct {
	Model    *string `json:"model"`
	Location *string `json:"location"`
}

// UpdateAsset handles PUT /assets/:id. Only the descriptive fields are
// editable; status changes go through the lifecycle endpoints.
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update asset request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAssetCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		AssetID:   assetID,
		Model:     req.Model,
		Location:  req.Location,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// ListAssets handles GET /assets.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAssetsCommand{
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetAsset handles GET /assets/:id.
func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAssetCommand{AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// AssetHistory handles GET /assets/:id/history.
func (h *AssetHandler) AssetHistory(c *gin.Context) {
	assetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.historyUC.Execute(c.Request.Context(), usecases.AssetHistoryCommand{AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// UtilizationStats handles GET /assets/stats/utilization.
func (h *AssetHandler) UtilizationStats(c *gin.Context) {
	result, err := h.utilizationUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// MaintenanceDue handles GET /assets/maintenance-due.
func (h *AssetHandler) MaintenanceDue(c *gin.Context) {
	result, err := h.maintenanceUC.Execute(c.Request.Context(), usecases.MaintenanceDueCommand{
		ThresholdDays: utils.ParseIntQuery(c, "threshold_days", 0),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
