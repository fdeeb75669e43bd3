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
	errInvalidMovePayload = pkg.NewDomainErrorSimple("INVALID_MOVE_INPUT", "Invalid move payload", http.StatusBadRequest)
)

// KanbanHandler serves the staff board.
type KanbanHandler struct {
	usecase usecase.IKanbanUseCase
}

func NewKanbanHandler(uc usecase.IKanbanUseCase) *KanbanHandler {
	return &KanbanHandler{usecase: uc}
}

// GetBoard re-fetches the board so intake and item changes show up. When
// storage is down it falls back to the last loaded board, flagged stale.
//
// @Summary      Kanban board
// @Tags         kanban
// @Produce      json
// @Success      200  {object}  response.BoardResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /kanban [get]
func (h *KanbanHandler) GetBoard(c *gin.Context) {
	snap, err := h.usecase.Refresh(c.Request.Context())
	if err != nil {
		if snap.RefreshedAt.IsZero() {
			zap.L().Error("[kanban][handler] board never loaded", zap.Error(err))
			writeError(c, mapKanbanError(err))
			return
		}
		zap.L().Warn("[kanban][handler] serving stale board", zap.Error(err))
		body := response.FromSnapshot(snap)
		body.Stale = true
		c.JSON(http.StatusOK, body)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// RefreshBoard re-fetches every order and regroups the board.
//
// @Summary      Refresh kanban board
// @Tags         kanban
// @Produce      json
// @Success      200  {object}  response.BoardResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /kanban/refresh [post]
func (h *KanbanHandler) RefreshBoard(c *gin.Context) {
	snap, err := h.usecase.Refresh(c.Request.Context())
	if err != nil {
		zap.L().Error("[kanban][handler] refresh failed", zap.Error(err))
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// MoveOrder moves a card to another stage and persists the new status.
//
// @Summary      Move order between stages
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                    true  "Service order id"
// @Param        body      body      request.MoveOrderRequest  true  "Source and target stages"
// @Success      200       {object}  response.MoveOrderResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /kanban/orders/{order_id}/move [patch]
func (h *KanbanHandler) MoveOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.MoveOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidMovePayload)
		return
	}

	res, err := h.usecase.MoveOrder(c.Request.Context(), orderID, payload.FromStage(), payload.ToStage())
	if err != nil {
		zap.L().Warn("[kanban][handler] move failed", zap.String("order_id", orderID), zap.Error(err))
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMoveResult(res))
}

func mapKanbanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotOnBoard):
		return pkg.NewDomainErrorSimple("ORDER_NOT_ON_BOARD", "Order not found in source stage", http.StatusNotFound)
	default:
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Erro ao comunicar com o banco de dados", err, http.StatusServiceUnavailable)
	}
}
