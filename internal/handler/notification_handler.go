package handler

import (
	"net/http"

	"wfh-backend/internal/service"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notification")
	{
		notifications.POST("/create_notification", h.Create)
		notifications.PUT("/read_notification/:notification_id", h.Read)
		notifications.DELETE("/delete_notification/:notification_id", h.Delete)
		notifications.GET("/:receiver_id", h.ListByReceiver)
	}
}

// Create fans a status change out into one or more notification rows
func (h *NotificationHandler) Create(c *gin.Context) {
	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Missing required fields"))
		return
	}

	notifications, err := h.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, notifications))
}

// Read toggles the is_read flag
func (h *NotificationHandler) Read(c *gin.Context) {
	notificationID, ok := pathID(c, "notification_id")
	if !ok {
		return
	}

	result, err := h.notificationService.Read(c.Request.Context(), notificationID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	notificationID, ok := pathID(c, "notification_id")
	if !ok {
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), notificationID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Notification deleted", nil))
}

// ListByReceiver returns every notification addressed to a staff member
func (h *NotificationHandler) ListByReceiver(c *gin.Context) {
	receiverID, ok := pathID(c, "receiver_id")
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListByReceiver(c.Request.Context(), receiverID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"notifications": notifications}))
}
