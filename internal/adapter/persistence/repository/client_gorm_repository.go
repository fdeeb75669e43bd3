package repository

import (
	"context"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	m := toClientModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ClientModel{}, "id = ?", id).Error
}

type VehicleGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IVehicleRepository = (*VehicleGormRepository)(nil)

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

func (r *VehicleGormRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	m := toVehicleModel(v)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&VehicleModel{}, "id = ?", id).Error
}
