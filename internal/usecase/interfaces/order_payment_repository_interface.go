package interfaces

import (
	"context"

	"oficina/internal/domain/entities"
)

//go:generate mockgen -source=order_payment_repository_interface.go -destination=mocks/order_payment_repository_mock.go -package=mock_interfaces

// IOrderPaymentRepository abstracts persistence for OrderPayment.
type IOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}
