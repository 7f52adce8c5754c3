package api

import (
	"net/http"

	resdto "canteen-core/internal/handler/dto/response"
	"canteen-core/internal/handler/middleware"
	"canteen-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationQueries queries.NotificationQueries
}

func NewNotificationHandler(notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{notificationQueries: notificationQueries}
}

// @Summary List notifications
// @Description List the current user's in-app notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	notifications := h.notificationQueries.ListByUser(userID)

	response := make([]*resdto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = resdto.FromNotification(n)
	}

	c.JSON(http.StatusOK, response)
}
