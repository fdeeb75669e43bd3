package routes

import (
	"oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathKanban = "/kanban"

func addKanbanRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc, h *handlers.KanbanHandler) {
	kanban := rg.Group(PathKanban, guard)
	{
		kanban.GET("", h.GetBoard)
		kanban.POST("/refresh", h.RefreshBoard)
		kanban.PATCH("/orders/:order_id/move", h.MoveOrder)
	}
}
