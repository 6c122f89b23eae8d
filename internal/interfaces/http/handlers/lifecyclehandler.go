package handlers

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/application/lifecycle/usecases"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// LifecycleHandler handles asset reclaim, replacement and customer
// state transitions past the initial onboarding.
type LifecycleHandler struct {
	reclaimUC     *usecases.ReclaimAssetsUseCase
	bulkReclaimUC *usecases.BulkReclaimUseCase
	reassignUC    *usecases.ReassignAssetUseCase
	replaceUC     *usecases.ReplaceFaultyAssetUseCase
	markFaultyUC  *usecases.MarkAssetFaultyUseCase
	retireUC      *usecases.RetireAssetUseCase
	deactivateUC  *usecases.DeactivateCustomerUseCase
	reactivateUC  *usecases.ReactivateCustomerUseCase
	inactiveUC    *usecases.InactiveCustomersUseCase
	summaryUC     *usecases.LifecycleSummaryUseCase
	logger        logger.Interface
}

func NewLifecycleHandler(
	reclaimUC *usecases.ReclaimAssetsUseCase,
	bulkReclaimUC *usecases.BulkReclaimUseCase,
	reassignUC *usecases.ReassignAssetUseCase,
	replaceUC *usecases.ReplaceFaultyAssetUseCase,
	markFaultyUC *usecases.MarkAssetFaultyUseCase,
	retireUC *usecases.RetireAssetUseCase,
	deactivateUC *usecases.DeactivateCustomerUseCase,
	reactivateUC *usecases.ReactivateCustomerUseCase,
	inactiveUC *usecases.InactiveCustomersUseCase,
	summaryUC *usecases.LifecycleSummaryUseCase,
	log logger.Interface,
) *LifecycleHandler {
	return &LifecycleHandler{
		reclaimUC:     reclaimUC,
		bulkReclaimUC: bulkReclaimUC,
		reassignUC:    reassignUC,
		replaceUC:     replaceUC,
		markFaultyUC:  markFaultyUC,
		retireUC:      retireUC,
		deactivateUC:  deactivateUC,
		reactivateUC:  reactivateUC,
		inactiveUC:    inactiveUC,
		summaryUC:     summaryUC,
		logger:        log,
	}
}

// ReclaimAssets handles POST /customers/:id/reclaim-assets.
func (h *LifecycleHandler) ReclaimAssets(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reclaimUC.Execute(c.Request.Context(), usecases.ReclaimAssetsCommand{
		ActorID:    actorID,
		ActorRole:  actorRole,
		CustomerID: customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type bulkReclaimRequest struct {
	CustomerIDs []uint `json:"customer_ids" binding:"required,min=1"`
}

// BulkReclaim handles POST /lifecycle/bulk-reclaim. Failures are
// reported per customer; the rest of the batch still runs.
func (h *LifecycleHandler) BulkReclaim(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req bulkReclaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid bulk reclaim request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bulkReclaimUC.Execute(c.Request.Context(), usecases.BulkReclaimCommand{
		ActorID:     actorID,
		ActorRole:   actorRole,
		CustomerIDs: req.CustomerIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type reassignAssetRequest struct {
	NewCustomerID uint `json:"new_customer_id" binding:"required"`
}

// ReassignAsset handles POST /assets/:id/reassign.
func (h *LifecycleHandler) ReassignAsset(c *gin.Context) {
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

	var req reassignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid reassign asset request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reassignUC.Execute(c.Request.Context(), usecases.ReassignAssetCommand{
		ActorID:       actorID,
		ActorRole:     actorRole,
		AssetID:       assetID,
		NewCustomerID: req.NewCustomerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type replaceFaultyAssetRequest struct {
	NewAssetID uint `json:"new_asset_id" binding:"required"`
}

// ReplaceFaultyAsset handles POST /assets/:id/replace.
func (h *LifecycleHandler) ReplaceFaultyAsset(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	oldAssetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req replaceFaultyAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid replace asset request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.replaceUC.Execute(c.Request.Context(), usecases.ReplaceFaultyAssetCommand{
		ActorID:    actorID,
		ActorRole:  actorRole,
		OldAssetID: oldAssetID,
		NewAssetID: req.NewAssetID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type assetReasonRequest struct {
	Reason string `json:"reason"`
}

// MarkAssetFaulty handles POST /assets/:id/mark-faulty.
func (h *LifecycleHandler) MarkAssetFaulty(c *gin.Context) {
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

	var req assetReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markFaultyUC.Execute(c.Request.Context(), usecases.MarkAssetFaultyCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		AssetID:   assetID,
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// RetireAsset handles POST /assets/:id/retire.
func (h *LifecycleHandler) RetireAsset(c *gin.Context) {
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

	var req assetReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.retireUC.Execute(c.Request.Context(), usecases.RetireAssetCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		AssetID:   assetID,
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type deactivateCustomerRequest struct {
	Reason string `json:"reason"`
}

// DeactivateCustomer handles POST /customers/:id/deactivate.
func (h *LifecycleHandler) DeactivateCustomer(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req deactivateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deactivateUC.Execute(c.Request.Context(), usecases.DeactivateCustomerCommand{
		ActorID:    actorID,
		ActorRole:  actorRole,
		CustomerID: customerID,
		Reason:     req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// ReactivateCustomer handles POST /customers/:id/reactivate.
func (h *LifecycleHandler) ReactivateCustomer(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reactivateUC.Execute(c.Request.Context(), usecases.ReactivateCustomerCommand{
		ActorID:    actorID,
		ActorRole:  actorRole,
		CustomerID: customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// InactiveCustomers handles GET /customers/inactive.
func (h *LifecycleHandler) InactiveCustomers(c *gin.Context) {
	result, err := h.inactiveUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Summary handles GET /lifecycle/summary.
func (h *LifecycleHandler) Summary(c *gin.Context) {
	result, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
