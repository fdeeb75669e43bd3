package interfaces

import "context"

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces

// INotifier delivers transient user-facing messages to the staff console.
type INotifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
