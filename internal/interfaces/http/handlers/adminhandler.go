package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/heliox-inc/heliox/internal/application/admin/dto"
	"github.com/heliox-inc/heliox/internal/domain/audit"
	"github.com/heliox-inc/heliox/internal/shared/constants"
	"github.com/heliox-inc/heliox/internal/shared/logger"
	"github.com/heliox-inc/heliox/internal/shared/utils"
)

// AdminService is the platform-operator surface: tenant offboarding and its
// preview.
type AdminService interface {
	DeleteCompany(ctx context.Context, companyID uint, actor audit.Actor) (*dto.DeletionResult, error)
	GetCompanyDeletionSummary(ctx context.Context, companyID uint) (*dto.DeletionSummary, error)
	ListAuditLogs(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error)
}

type AdminHandler struct {
	service AdminService
	logger  logger.Interface
}

func NewAdminHandler(service AdminService, logger logger.Interface) *AdminHandler {
	return &AdminHandler{service: service, logger: logger}
}

// DeleteCompany handles DELETE /admin/companies/:id. The response reports
// per-collection deletion counts plus any non-fatal errors; a surviving root
// row comes back as an error response, never a 200.
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	companyID, ok := h.parseCompanyID(c)
	if !ok {
		return
	}

	actor := audit.Actor{ID: c.GetUint(constants.ContextKeyUserID)}

	h.logger.Infow("company deletion requested", "company_id", companyID, "actor_id", actor.ID)

	result, err := h.service.DeleteCompany(c.Request.Context(), companyID, actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetDeletionSummary handles GET /admin/companies/:id/deletion-summary.
func (h *AdminHandler) GetDeletionSummary(c *gin.Context) {
	companyID, ok := h.parseCompanyID(c)
	if !ok {
		return
	}

	summary, err := h.service.GetCompanyDeletionSummary(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, summary)
}

// ListAuditLogs handles GET /admin/audit-logs.
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid offset")
		return
	}

	resp, err := h.service.ListAuditLogs(c.Request.Context(), limit, offset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, resp)
}

func (h *AdminHandler) parseCompanyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid company id")
		return 0, false
	}
	return uint(id), true
}
