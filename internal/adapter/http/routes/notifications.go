package routes

import (
	"oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNotifications = "/notifications"

func addNotificationRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc, h *handlers.NotificationHandler) {
	rg.GET(PathNotifications, guard, h.List)
}
