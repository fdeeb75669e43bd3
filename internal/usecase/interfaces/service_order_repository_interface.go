package interfaces

import (
	"context"
	"time"

	"oficina/internal/domain/entities"
)

//go:generate mockgen -source=service_order_repository_interface.go -destination=mocks/service_order_repository_mock.go -package=mock_interfaces

// IServiceOrderRepository abstracts persistence of service orders.
//
// Lookups return a zero-value order (empty ID) when nothing matches.
type IServiceOrderRepository interface {
	// ListWithDetails returns every order with its items, client and vehicle.
	ListWithDetails(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	// UpdateStatus persists a status change in a single write. completedAt is
	// written only when non-nil.
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, completedAt *time.Time) error
	UpdateItemStatus(ctx context.Context, orderID, itemID string, status entities.ItemStatus) (entities.ServiceOrder, error)
	NextOrderNumber(ctx context.Context) (int64, error)
}
