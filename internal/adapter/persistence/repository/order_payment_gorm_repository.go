package repository

import (
	"context"
	"errors"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type OrderPaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderPaymentRepository = (*OrderPaymentGormRepository)(nil)

func NewOrderPaymentGormRepository(db *gorm.DB) *OrderPaymentGormRepository {
	return &OrderPaymentGormRepository{db: db}
}

func (r *OrderPaymentGormRepository) Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	m := toOrderPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.OrderPayment{}, err
	}
	return p, nil
}

func (r *OrderPaymentGormRepository) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	var m OrderPaymentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.OrderPayment{}, nil
	}
	if err != nil {
		return entities.OrderPayment{}, err
	}
	return m.toEntity(), nil
}

func (r *OrderPaymentGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	var models []OrderPaymentModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("date ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.OrderPayment, 0, len(models))
	for _, m := range models {
		out = append(out, m.toEntity())
	}
	return out, nil
}
