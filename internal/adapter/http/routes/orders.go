package routes

import (
	"oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIntake   = "/intake"
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	guard gin.HandlerFunc,
	intakeHandler *handlers.IntakeHandler,
	itemHandler *handlers.OrderItemHandler,
	paymentHandler *handlers.OrderPaymentHandler,
) {
	rg.POST(PathIntake, guard, intakeHandler.QuickCreate)

	orders := rg.Group(PathOrders, guard)
	{
		orders.GET("/:order_id/approved-value", itemHandler.GetApprovedValue)
		orders.PATCH("/:order_id/items/:item_id/approve", itemHandler.ApproveItem)
		orders.PATCH("/:order_id/items/:item_id/reject", itemHandler.RejectItem)
		orders.PATCH("/:order_id/items/:item_id/reset", itemHandler.ResetItem)
	}

	payments := rg.Group(PathPayments, guard)
	{
		payments.POST("/:order_id", paymentHandler.CreatePaymentByOrderID)
		payments.GET("/:order_id", paymentHandler.GetPaymentByOrderID)
	}
}
