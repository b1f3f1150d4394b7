package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"syndicpro/internal/middleware"
	"syndicpro/internal/models"
	"syndicpro/internal/services"
	"syndicpro/internal/validator"
	"syndicpro/pkg/apperrors"
)

type NotificationHandler struct {
	BaseHandler
	notifications services.NotificationService
}

func NewNotificationHandler(notifications services.NotificationService, v *validator.Validator) *NotificationHandler {
	return &NotificationHandler{BaseHandler: NewBaseHandler(v), notifications: notifications}
}

type createAnnouncementRequest struct {
	Title          string   `json:"title" validate:"required"`
	Message        string   `json:"message" validate:"required"`
	Type           string   `json:"type" validate:"omitempty,oneof=document_uploaded general_announcement payment_reminder meeting"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	RecipientRoles []string `json:"recipient_roles" validate:"omitempty,dive,oneof=resident syndic superadmin other"`
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req createAnnouncementRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	roles := make([]models.UserRole, 0, len(req.RecipientRoles))
	for _, role := range req.RecipientRoles {
		roles = append(roles, models.UserRole(role))
	}

	input := services.CreateAnnouncementInput{
		Title:          req.Title,
		Message:        req.Message,
		Type:           models.NotificationType(req.Type),
		Priority:       models.NotificationPriority(req.Priority),
		RecipientRoles: roles,
	}
	if senderID, ok := middleware.CallerID(c); ok {
		input.SenderID = &senderID
	}

	notification, err := h.notifications.CreateAnnouncement(input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.notifications.ListForUser(userID, limit, offset)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	count, err := h.notifications.UnreadCount(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	if err := h.notifications.MarkAsRead(c.Param("id"), userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
