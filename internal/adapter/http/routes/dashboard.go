package routes

import (
	"oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDashboard = "/dashboard"

func addDashboardRoutes(rg *gin.RouterGroup, staff, admin gin.HandlerFunc, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/financial", admin, h.Financial)
		dashboard.GET("/productivity", staff, h.Productivity)
	}
}
