package handlers

import (
	"errors"
	"net/http"

	request "oficina/internal/adapter/http/dto/request"
	response "oficina/internal/adapter/http/dto/response"
	"oficina/internal/usecase"
	"oficina/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
)

type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// QuickCreate registers client, vehicle and service order in one call.
//
// @Summary      Quick-create intake
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      request.IntakeRequest  true  "Client, vehicle and problem"
// @Success      201   {object}  response.IntakeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /intake [post]
func (h *IntakeHandler) QuickCreate(c *gin.Context) {
	var payload request.IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidIntakePayload)
		return
	}

	res, err := h.usecase.QuickCreate(c.Request.Context(), payload.ToInput())
	if err != nil {
		zap.L().Error("[intake][handler] quick-create failed", zap.Error(err))
		writeError(c, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromIntakeResult(res))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_NAME", "Client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlate):
		return pkg.NewDomainErrorSimple("INVALID_PLATE", "Vehicle plate is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
