package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ServiceOrderGormRepository persists ServiceOrder entities in Postgres
// (or SQLite) through GORM.
type ServiceOrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderGormRepository)(nil)

func NewServiceOrderGormRepository(db *gorm.DB) *ServiceOrderGormRepository {
	return &ServiceOrderGormRepository{db: db}
}

func (r *ServiceOrderGormRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Client").
		Preload("Vehicle")
}

func (r *ServiceOrderGormRepository) ListWithDetails(ctx context.Context) ([]entities.ServiceOrder, error) {
	var models []ServiceOrderModel
	if err := r.withDetails(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	out := make([]entities.ServiceOrder, 0, len(models))
	for _, m := range models {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *ServiceOrderGormRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	var m ServiceOrderModel
	err := r.withDetails(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ServiceOrder{}, nil
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return m.toEntity(), nil
}

func (r *ServiceOrderGormRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	m := toServiceOrderModel(o)
	if err := r.db.WithContext(ctx).Omit("Client", "Vehicle").Create(&m).Error; err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderGormRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, completedAt *time.Time) error {
	updates := map[string]any{"status": string(status)}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}
	res := r.db.WithContext(ctx).Model(&ServiceOrderModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("service order %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *ServiceOrderGormRepository) UpdateItemStatus(ctx context.Context, orderID, itemID string, status entities.ItemStatus) (entities.ServiceOrder, error) {
	res := r.db.WithContext(ctx).
		Model(&ServiceOrderItemModel{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Update("status", string(status))
	if res.Error != nil {
		return entities.ServiceOrder{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ServiceOrder{}, nil
	}
	return r.GetByID(ctx, orderID)
}

// NextOrderNumber returns max(order_number)+1. The unique index on
// order_number rejects a concurrent duplicate.
func (r *ServiceOrderGormRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	var current int64
	err := r.db.WithContext(ctx).
		Model(&ServiceOrderModel{}).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&current).Error
	if err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return current + 1, nil
}
