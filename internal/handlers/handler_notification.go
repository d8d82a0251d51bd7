package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// notificationHandler handles HTTP requests for the in-app inbox.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:id/read", h.markRead)
		notifications.POST("/read-all", h.markAllRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Retrieves the user's notifications, newest first.
// @Tags notifications
// @Produce json
// @Param unreadOnly query bool false "Return only unread notifications" default(false)
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// markRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to mark notification as read")
		return
	}

	c.Status(http.StatusNoContent)
}

// markAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondWithError(c, err, "Failed to mark notifications as read")
		return
	}

	c.Status(http.StatusNoContent)
}
