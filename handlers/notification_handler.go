package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
	Helper              *helper.HTTPHelper
}

func NewNotificationHandler(notificationService services.NotificationService, h *helper.HTTPHelper) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, Helper: h}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")
	list := h.notificationService.GetNotifications(userID)
	h.Helper.SendSuccess(c, "Notifications loaded", list)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.notificationService.MarkRead(c.Param("id"), userID); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Notification marked as read", h.Helper.EmptyJsonMap())
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "All notifications marked as read", h.Helper.EmptyJsonMap())
}
