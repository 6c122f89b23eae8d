package handlers

import (
	"github.com/gin-gonic/gin"

	customerusecases "fibernet/internal/application/customer/usecases"
	onboardingusecases "fibernet/internal/application/onboarding/usecases"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// CustomerHandler handles customer listing, detail edits and onboarding.
type CustomerHandler struct {
	listUC    *customerusecases.ListCustomersUseCase
	getUC     *customerusecases.GetCustomerUseCase
	updateUC  *customerusecases.UpdateCustomerUseCase
	onboardUC *onboardingusecases.OnboardCustomerUseCase
	logger    logger.Interface
}

func NewCustomerHandler(
	listUC *customerusecases.ListCustomersUseCase,
	getUC *customerusecases.GetCustomerUseCase,
	updateUC *customerusecases.UpdateCustomerUseCase,
	onboardUC *onboardingusecases.OnboardCustomerUseCase,
	log logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		listUC:    listUC,
		getUC:     getUC,
		updateUC:  updateUC,
		onboardUC: onboardUC,
		logger:    log,
	}
}

// ListCustomers handles GET /customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	splitterID, err := uintQuery(c, "splitter_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, pageSize := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), customerusecases.ListCustomersCommand{
		Status:       c.Query("status"),
		Neighborhood: c.Query("neighborhood"),
		SplitterID:   splitterID,
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Customers, result.Total, page, pageSize)
}

// GetCustomer handles GET /customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), customerusecases.GetCustomerCommand{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type updateCustomerRequest struct {
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	Neighborhood   *string `json:"neighborhood"`
	Plan           *string `json:"plan"`
	ConnectionType *string `json:"connection_type" binding:"omitempty,connectiontype"`
}

// UpdateCustomer handles PUT /customers/:id. Only the contact and
// service fields are editable; status and the port binding move through
// onboarding and the lifecycle endpoints.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
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

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update customer request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), customerusecases.UpdateCustomerCommand{
		ActorID:        actorID,
		ActorRole:      actorRole,
		CustomerID:     customerID,
		Name:           req.Name,
		Address:        req.Address,
		Neighborhood:   req.Neighborhood,
		Plan:           req.Plan,
		ConnectionType: req.ConnectionType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

type onboardCustomerRequest struct {
	Name              string   `json:"name" binding:"required"`
	Address           string   `json:"address" binding:"required"`
	Neighborhood      string   `json:"neighborhood" binding:"required"`
	Plan              string   `json:"plan"`
	ConnectionType    string   `json:"connection_type" binding:"required,connectiontype"`
	SplitterID        uint     `json:"splitter_id" binding:"required"`
	Port              int      `json:"port" binding:"required"`
	ONTAssetID        uint     `json:"ont_asset_id" binding:"required"`
	RouterAssetID     uint     `json:"router_asset_id" binding:"required"`
	FiberLengthMeters *float64 `json:"fiber_length_meters"`
}

// OnboardCustomer handles POST /customers/onboard.
func (h *CustomerHandler) OnboardCustomer(c *gin.Context) {
	actorID, actorRole, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req onboardCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid onboard customer request body", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.onboardUC.Execute(c.Request.Context(), onboardingusecases.OnboardCustomerCommand{
		ActorID:           actorID,
		ActorRole:         actorRole,
		Name:              req.Name,
		Address:           req.Address,
		Neighborhood:      req.Neighborhood,
		Plan:              req.Plan,
		ConnectionType:    req.ConnectionType,
		SplitterID:        req.SplitterID,
		Port:              req.Port,
		ONTAssetID:        req.ONTAssetID,
		RouterAssetID:     req.RouterAssetID,
		FiberLengthMeters: req.FiberLengthMeters,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}
