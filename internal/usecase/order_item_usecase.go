package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound = errors.New("service order not found")
	ErrInvalidItemID = errors.New("invalid item id")
)

// ApprovedValueResult is the billable summary of an order.
type ApprovedValueResult struct {
	OrderID       string  `json:"order_id"`
	Total         float64 `json:"total"`
	ApprovedValue float64 `json:"approved_value"`
	Category      string  `json:"category"`
}

// IOrderItemUseCase exposes the customer's decision on each estimate line:
//   - approve / reject / reset a single item
//   - read the approved value of the order
type IOrderItemUseCase interface {
	ApproveItem(ctx context.Context, orderID, itemID string) (entities.ServiceOrder, error)
	RejectItem(ctx context.Context, orderID, itemID string) (entities.ServiceOrder, error)
	ResetItem(ctx context.Context, orderID, itemID string) (entities.ServiceOrder, error)
	GetApprovedValue(ctx context.Context, orderID string) (ApprovedValueResult, error)
}

type OrderItemUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IOrderItemUseCase = (*OrderItemUseCase)(nil)

func NewOrderItemUseCase(repo interfaces.IServiceOrderRepository) *OrderItemUseCase {
	return &OrderItemUseCase{repo: repo}
}

func (u *OrderItemUseCase) ApproveItem(ctx context.Context, orderID, itemID string) (entities.ServiceOrder, error) {
	return u.updateItemStatus(ctx, orderID, itemID, entities.ItemStatusAprovado)
}

func (u *OrderItemUseCase) RejectItem(ctx context.Context, orderID, itemID string) (entities.ServiceOrder, error) {
	return u.updateItemStatus(ctx, orderID, itemID, entities.ItemStatusRecusado)
}

func (u *OrderItemUseCase) ResetItem(ctx context.Context, orderID, itemID string) (entities.ServiceOrder, error) {
	return u.updateItemStatus(ctx, orderID, itemID, entities.ItemStatusPendente)
}

func (u *OrderItemUseCase) updateItemStatus(ctx context.Context, orderID, itemID string, status entities.ItemStatus) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ServiceOrder{}, ErrInvalidItemID
	}

	updated, err := u.repo.UpdateItemStatus(ctx, orderID, itemID, status)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderItemUseCase) GetApprovedValue(ctx context.Context, orderID string) (ApprovedValueResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ApprovedValueResult{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return ApprovedValueResult{}, err
	}
	if o.ID == "" {
		return ApprovedValueResult{}, ErrOrderNotFound
	}

	res := ApprovedValueResult{
		OrderID:       o.ID,
		ApprovedValue: o.ApprovedValue(),
		Category:      entities.ClassifyCategory(o.ProblemDescription),
	}
	if o.Total != nil {
		res.Total = *o.Total
	}
	return res, nil
}
