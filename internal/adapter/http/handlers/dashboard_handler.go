package handlers

import (
	"net/http"

	"oficina/internal/usecase"
	"oficina/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Financial godoc
// @Summary      Financial dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  usecase.FinancialDashboard
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard/financial [get]
func (h *DashboardHandler) Financial(c *gin.Context) {
	res, err := h.usecase.Financial(c.Request.Context())
	if err != nil {
		zap.L().Error("[dashboard][handler] financial failed", zap.Error(err))
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Productivity godoc
// @Summary      Productivity dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  usecase.ProductivityDashboard
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard/productivity [get]
func (h *DashboardHandler) Productivity(c *gin.Context) {
	res, err := h.usecase.Productivity(c.Request.Context())
	if err != nil {
		zap.L().Error("[dashboard][handler] productivity failed", zap.Error(err))
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, res)
}
