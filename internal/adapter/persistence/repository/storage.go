package repository

import (
	"context"
	"fmt"

	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/database"
	"oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Storage bundles the repositories of one backend.
type Storage struct {
	Driver   string
	Orders   interfaces.IServiceOrderRepository
	Clients  interfaces.IClientRepository
	Vehicles interfaces.IVehicleRepository
	Payments interfaces.IOrderPaymentRepository
	Settings interfaces.ISystemConfigRepository

	ddb *dynamodb.Client
	db  *gorm.DB
}

// OpenStorage connects to the backend named by cfg.StorageDriver.
func OpenStorage(ctx context.Context, cfg config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return NewDynamoStorage(ddb), nil
	case config.StorageGorm:
		db, err := database.ConnectGorm(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect gorm: %w", err)
		}
		return NewGormStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func NewDynamoStorage(ddb *dynamodb.Client) *Storage {
	return &Storage{
		Driver:   config.StorageDynamoDB,
		Orders:   NewServiceOrderDynamoRepository(ddb),
		Clients:  NewClientDynamoRepository(ddb),
		Vehicles: NewVehicleDynamoRepository(ddb),
		Payments: NewOrderPaymentDynamoRepository(ddb),
		Settings: NewSystemConfigDynamoRepository(ddb),
		ddb:      ddb,
	}
}

func NewGormStorage(db *gorm.DB) *Storage {
	return &Storage{
		Driver:   config.StorageGorm,
		Orders:   NewServiceOrderGormRepository(db),
		Clients:  NewClientGormRepository(db),
		Vehicles: NewVehicleGormRepository(db),
		Payments: NewOrderPaymentGormRepository(db),
		Settings: NewSystemConfigGormRepository(db),
		db:       db,
	}
}

// Migrate creates the tables of the selected backend.
func (s *Storage) Migrate(ctx context.Context) error {
	zap.L().Info("[storage][repository] migrating", zap.String("driver", s.Driver))
	if s.db != nil {
		return AutoMigrate(s.db.WithContext(ctx))
	}
	return EnsureDynamoTables(ctx, s.ddb)
}
