package handlers

import (
	"net/http"

	"oficina/internal/infrastructure/notification"

	"github.com/gin-gonic/gin"
)

// NotificationSource is the read side of the notification feed.
type NotificationSource interface {
	Recent() []notification.Notification
}

type NotificationHandler struct {
	feed NotificationSource
}

func NewNotificationHandler(feed NotificationSource) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List godoc
// @Summary      Recent notifications, newest first
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  notification.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Recent())
}
