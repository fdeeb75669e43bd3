package repository

import (
	"context"
	"errors"

	"oficina/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SystemConfigGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISystemConfigRepository = (*SystemConfigGormRepository)(nil)

func NewSystemConfigGormRepository(db *gorm.DB) *SystemConfigGormRepository {
	return &SystemConfigGormRepository{db: db}
}

func (r *SystemConfigGormRepository) GetValue(ctx context.Context, key string) (string, bool, error) {
	var m SystemConfigModel
	err := r.db.WithContext(ctx).Where(&SystemConfigModel{Key: key}).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.Value, true, nil
}

// SetValue upserts a setting; used by the operator CLI.
func (r *SystemConfigGormRepository) SetValue(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&SystemConfigModel{Key: key, Value: value}).Error
}
