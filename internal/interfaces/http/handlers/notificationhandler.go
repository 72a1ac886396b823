package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/heliox-inc/heliox/internal/application/notification/dto"
	"github.com/heliox-inc/heliox/internal/shared/constants"
	"github.com/heliox-inc/heliox/internal/shared/logger"
	"github.com/heliox-inc/heliox/internal/shared/utils"
)

// NotificationService is the application surface the handler needs.
type NotificationService interface {
	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	ListNotifications(ctx context.Context, companyID, userID uint) (*dto.ListResponse, error)
	GetUnreadCount(ctx context.Context, companyID, userID uint) (*dto.UnreadCountResponse, error)
	MarkAsRead(ctx context.Context, id, companyID, userID uint) error
	MarkAllAsRead(ctx context.Context, companyID, userID uint) error
	HideNotification(ctx context.Context, id, companyID, userID uint) error
}

type NotificationHandler struct {
	service NotificationService
	logger  logger.Interface
}

func NewNotificationHandler(service NotificationService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{service: service, logger: logger}
}

// Create handles POST /notifications. The company is always the caller's
// own tenant, whatever the request body says.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.CompanyID = c.GetUint(constants.ContextKeyCompanyID)

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.CreateNotification(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, resp)
}

// List handles GET /notifications: the caller's filtered feed.
func (h *NotificationHandler) List(c *gin.Context) {
	companyID := c.GetUint(constants.ContextKeyCompanyID)
	userID := c.GetUint(constants.ContextKeyUserID)

	resp, err := h.service.ListNotifications(c.Request.Context(), companyID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, resp)
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	companyID := c.GetUint(constants.ContextKeyCompanyID)
	userID := c.GetUint(constants.ContextKeyUserID)

	resp, err := h.service.GetUnreadCount(c.Request.Context(), companyID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, resp)
}

// MarkAsRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	companyID := c.GetUint(constants.ContextKeyCompanyID)
	userID := c.GetUint(constants.ContextKeyUserID)

	if err := h.service.MarkAsRead(c.Request.Context(), id, companyID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, nil, "notification marked as read")
}

// MarkAllAsRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	companyID := c.GetUint(constants.ContextKeyCompanyID)
	userID := c.GetUint(constants.ContextKeyUserID)

	if err := h.service.MarkAllAsRead(c.Request.Context(), companyID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, nil, "all notifications marked as read")
}

// Hide handles DELETE /notifications/:id. The document is hidden for the
// caller only, never removed.
func (h *NotificationHandler) Hide(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	companyID := c.GetUint(constants.ContextKeyCompanyID)
	userID := c.GetUint(constants.ContextKeyUserID)

	if err := h.service.HideNotification(c.Request.Context(), id, companyID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, nil, "notification hidden")
}

func (h *NotificationHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification id")
		return 0, false
	}
	return uint(id), true
}
