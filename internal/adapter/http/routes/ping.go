package routes

import (
	"oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing       = "/ping"
	PathCategories = "/categories"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)

	categories := rg.Group(PathCategories)
	{
		categories.GET("/classify", handlers.ClassifyCategory)
	}
}
