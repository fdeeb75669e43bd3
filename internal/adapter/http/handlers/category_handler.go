package handlers

import (
	"net/http"

	response "oficina/internal/adapter/http/dto/response"
	"oficina/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ClassifyCategory godoc
// @Summary      Classify a problem description
// @Tags         categories
// @Produce      json
// @Param        description  query     string  false  "Problem description"
// @Success      200          {object}  response.ClassifyResponse
// @Router       /categories/classify [get]
func ClassifyCategory(c *gin.Context) {
	desc := c.Query("description")
	c.JSON(http.StatusOK, response.ClassifyResponse{
		Description: desc,
		Category:    entities.ClassifyCategoryText(desc),
	})
}
