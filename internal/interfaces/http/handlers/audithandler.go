package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fibernet/internal/application/audit/usecases"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// AuditHandler exposes the append-only audit trail to administrators.
type AuditHandler struct {
	queryUC    *usecases.QueryEntriesUseCase
	activityUC *usecases.UserActivityUseCase
	summaryUC  *usecases.SummaryUseCase
	exportUC   *usecases.ExportEntriesUseCase
	logger     logger.Interface
}

func NewAuditHandler(
	queryUC *usecases.QueryEntriesUseCase,
	activityUC *usecases.UserActivityUseCase,
	summaryUC *usecases.SummaryUseCase,
	exportUC *usecases.ExportEntriesUseCase,
	log logger.Interface,
) *AuditHandler {
	return &AuditHandler{
		queryUC:    queryUC,
		activityUC: activityUC,
		summaryUC:  summaryUC,
		exportUC:   exportUC,
		logger:     log,
	}
}

// QueryEntries handles GET /audit/entries.
func (h *AuditHandler) QueryEntries(c *gin.Context) {
	actorID, err := uintQuery(c, "actor_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	from, err := timeQuery(c, "from")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, pageSize := utils.ParsePagination(c)
	result, err := h.queryUC.Execute(c.Request.Context(), usecases.QueryEntriesCommand{
		ActorID:  actorID,
		Action:   c.Query("action"),
		From:     from,
		To:       to,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Entries, result.Total, page, pageSize)
}

// UserActivity handles GET /audit/users/:id/activity.
func (h *AuditHandler) UserActivity(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.activityUC.Execute(c.Request.Context(), usecases.UserActivityCommand{
		UserID: userID,
		Days:   utils.ParseIntQuery(c, "days", 0),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Summary handles GET /audit/summary.
func (h *AuditHandler) Summary(c *gin.Context) {
	result, err := h.summaryUC.Execute(c.Request.Context(), usecases.SummaryCommand{
		Days: utils.ParseIntQuery(c, "days", 0),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Export handles GET /audit/export?format=json|csv and streams a file.
func (h *AuditHandler) Export(c *gin.Context) {
	actorID, err := uintQuery(c, "actor_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	from, err := timeQuery(c, "from")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportEntriesCommand{
		Format:  usecases.ExportFormat(c.DefaultQuery("format", "json")),
		ActorID: actorID,
		Action:  c.Query("action"),
		From:    from,
		To:      to,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
