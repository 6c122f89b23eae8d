package handlers

import (
	"github.com/gin-gonic/gin"

	"fibernet/internal/application/topology/usecases"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// TopologyHandler handles the network hierarchy endpoints.
type TopologyHandler struct {
	createNodesUC      *usecases.CreateNodesUseCase
	listNodesUC        *usecases.ListNodesUseCase
	availablePortsUC   *usecases.AvailablePortsUseCase
	fdhTopologyUC      *usecases.FDHTopologyUseCase
	customerTopologyUC *usecases.CustomerTopologyUseCase
	searchDeviceUC     *usecases.SearchDeviceUseCase
	logger             logger.Interface
}

func NewTopologyHandler(
	createNodesUC *usecases.CreateNodesUseCase,
	listNodesUC *usecases.ListNodesUseCase,
	availablePortsUC *usecases.AvailablePortsUseCase,
	fdhTopologyUC *usecases.FDHTopologyUseCase,
	customerTopologyUC *usecases.CustomerTopologyUseCase,
	searchDeviceUC *usecases.SearchDeviceUseCase,
	log logger.Interface,
) *TopologyHandler {
	return &TopologyHandler{
		createNodesUC:      createNodesUC,
		listNodesUC:        listNodesUC,
		availablePortsUC:   availablePortsUC,
		fdhTopologyUC:      fdhTopologyUC,
		customerTopologyUC: customerTopologyUC,
		searchDeviceUC:     searchDeviceUC,
		logger:             log,
	}
}

type createHeadendRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Region   string `json:"region"`
}

// CreateHeadend handles POST /topology/headends.
func (h *TopologyHandler) CreateHeadend(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createHeadendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create headend request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createNodesUC.CreateHeadend(c.Request.Context(), usecases.CreateHeadendCommand{
		ActorID:   actorID,
		ActorRole: actorRole,
		Name:      req.Name,
		Location:  req.Location,
		Region:    req.Region,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

type createFDHRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Region      string `json:"region"`
	MaxCapacity int    `json:"max_capacity" binding:"required"`
	HeadendID   uint   `json:"headend_id" binding:"required"`
}

// CreateFDH handles POST /topology/fdhs.
func (h *TopologyHandler) CreateFDH(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createFDHRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create fdh request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createNodesUC.CreateFDH(c.Request.Context(), usecases.CreateFDHCommand{
		ActorID:     actorID,
		ActorRole:   actorRole,
		Name:        req.Name,
		Location:    req.Location,
		Region:      req.Region,
		MaxCapacity: req.MaxCapacity,
		HeadendID:   req.HeadendID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

type createSplitterRequest struct {
	Model        string `json:"model" binding:"required"`
	Location     string `json:"location"`
	PortCapacity int    `json:"port_capacity" binding:"required"`
	FDHID        uint   `json:"fdh_id" binding:"required"`
}

// CreateSplitter handles POST /topology/splitters.
func (h *TopologyHandler) CreateSplitter(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createSplitterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create splitter request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createNodesUC.CreateSplitter(c.Request.Context(), usecases.CreateSplitterCommand{
		ActorID:      actorID,
		ActorRole:    actorRole,
		Model:        req.Model,
		Location:     req.Location,
		PortCapacity: req.PortCapacity,
		FDHID:        req.FDHID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListHeadends handles GET /topology/headends.
func (h *TopologyHandler) ListHeadends(c *gin.Context) {
	result, err := h.listNodesUC.Headends(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// ListFDHs handles GET /topology/fdhs with an optional headend_id filter.
func (h *TopologyHandler) ListFDHs(c *gin.Context) {
	headendID, err := uintQuery(c, "headend_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listNodesUC.FDHs(c.Request.Context(), headendID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// ListSplitters handles GET /topology/splitters with an optional fdh_id filter.
func (h *TopologyHandler) ListSplitters(c *gin.Context) {
	fdhID, err := uintQuery(c, "fdh_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listNodesUC.Splitters(c.Request.Context(), fdhID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// AvailablePorts handles GET /topology/splitters/:id/available-ports.
func (h *TopologyHandler) AvailablePorts(c *gin.Context) {
	splitterID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.availablePortsUC.Execute(c.Request.Context(), usecases.AvailablePortsCommand{SplitterID: splitterID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// FDHTopology handles GET /topology/fdhs/:id/tree.
func (h *TopologyHandler) FDHTopology(c *gin.Context) {
	fdhID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.fdhTopologyUC.Execute(c.Request.Context(), usecases.FDHTopologyCommand{FDHID: fdhID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// CustomerTopology handles GET /topology/customers/:id.
func (h *TopologyHandler) CustomerTopology(c *gin.Context) {
	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customerTopologyUC.Execute(c.Request.Context(), usecases.CustomerTopologyCommand{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// SearchDevice handles GET /topology/devices/search?serial=.
func (h *TopologyHandler) SearchDevice(c *gin.Context) {
	serial := c.Query("serial")
	if serial == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("serial query parameter is required"))
		return
	}

	result, err := h.searchDeviceUC.Execute(c.Request.Context(), usecases.SearchDeviceCommand{SerialNumber: serial})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
