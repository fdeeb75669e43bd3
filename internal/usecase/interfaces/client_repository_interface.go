package interfaces

import (
	"context"

	"oficina/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_mock.go -package=mock_interfaces

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
