package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dhruvkrishnavaid/oceaneye/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Handles GET /api/notifications - returns all notifications plus the
// stored unread count; the view filters statuses inline.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.notificationService.List())
}

// Handles POST /api/notifications/refresh.
func (h *NotificationHandler) Refresh(c *gin.Context) {
	if err := h.notificationService.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notifications refreshed"})
}

// Handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}
	if !h.notificationService.MarkAsRead(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

// Handles PATCH /api/notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	h.notificationService.MarkAllAsRead()
	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

// Handles PATCH /api/notifications/:id/verify.
func (h *NotificationHandler) MarkAsVerified(c *gin.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}
	if !h.notificationService.MarkAsVerified(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as verified"})
}

// Handles PATCH /api/notifications/:id/fake.
func (h *NotificationHandler) MarkAsFake(c *gin.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}
	if !h.notificationService.MarkAsFake(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as fake"})
}

func (h *NotificationHandler) notificationID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return 0, false
	}
	return id, true
}
