package interfaces

import "context"

//go:generate mockgen -source=system_config_repository_interface.go -destination=mocks/system_config_repository_mock.go -package=mock_interfaces

// ISystemConfigRepository reads the shop's key/value settings.
type ISystemConfigRepository interface {
	GetValue(ctx context.Context, key string) (value string, found bool, err error)
}
