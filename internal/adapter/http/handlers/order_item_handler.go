package handlers

import (
	"context"
	"errors"
	"net/http"

	response "oficina/internal/adapter/http/dto/response"
	"oficina/internal/domain/entities"
	"oficina/internal/usecase"
	"oficina/pkg"

	"github.com/gin-gonic/gin"
)

// OrderItemHandler records the customer's decision on estimate lines.
type OrderItemHandler struct {
	usecase usecase.IOrderItemUseCase
}

func NewOrderItemHandler(uc usecase.IOrderItemUseCase) *OrderItemHandler {
	return &OrderItemHandler{usecase: uc}
}

// ApproveItem godoc
// @Summary      Approve an estimate line
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Service order id"
// @Param        item_id   path      string  true  "Item id"
// @Success      200       {object}  response.ServiceOrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/items/{item_id}/approve [patch]
func (h *OrderItemHandler) ApproveItem(c *gin.Context) {
	h.patchItem(c, h.usecase.ApproveItem)
}

// RejectItem godoc
// @Summary      Reject an estimate line
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Service order id"
// @Param        item_id   path      string  true  "Item id"
// @Success      200       {object}  response.ServiceOrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/items/{item_id}/reject [patch]
func (h *OrderItemHandler) RejectItem(c *gin.Context) {
	h.patchItem(c, h.usecase.RejectItem)
}

// ResetItem godoc
// @Summary      Reset an estimate line to pending
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Service order id"
// @Param        item_id   path      string  true  "Item id"
// @Success      200       {object}  response.ServiceOrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/items/{item_id}/reset [patch]
func (h *OrderItemHandler) ResetItem(c *gin.Context) {
	h.patchItem(c, h.usecase.ResetItem)
}

func (h *OrderItemHandler) patchItem(
	c *gin.Context,
	updater func(ctx context.Context, orderID, itemID string) (entities.ServiceOrder, error),
) {
	order, err := updater(c.Request.Context(), c.Param("order_id"), c.Param("item_id"))
	if err != nil {
		writeError(c, mapOrderItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// GetApprovedValue godoc
// @Summary      Approved value of an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Service order id"
// @Success      200       {object}  usecase.ApprovedValueResult
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/approved-value [get]
func (h *OrderItemHandler) GetApprovedValue(c *gin.Context) {
	res, err := h.usecase.GetApprovedValue(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, mapOrderItemError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapOrderItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order or item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
