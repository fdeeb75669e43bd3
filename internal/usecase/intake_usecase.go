package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidClientName = errors.New("client name is required")
	ErrInvalidPlate      = errors.New("vehicle plate is required")
)

// IntakeItem is an estimate line captured at intake.
type IntakeItem struct {
	Description string
	TotalPrice  *float64
	Quantidade  int
}

// IntakeInput is the quick-create form: client, vehicle and the problem
// reported at the counter.
type IntakeInput struct {
	ClientName          string
	ClientPhone         string
	ClientEmail         string
	Plate               string
	Brand               string
	Model               string
	Year                int
	ProblemDescription  string
	MechanicID          string
	Total               *float64
	EstimatedCompletion *time.Time
	Items               []IntakeItem
}

type IntakeResult struct {
	Client   entities.Client       `json:"client"`
	Vehicle  entities.Vehicle      `json:"vehicle"`
	Order    entities.ServiceOrder `json:"order"`
	Category string                `json:"category"`
}

type IIntakeUseCase interface {
	QuickCreate(ctx context.Context, in IntakeInput) (IntakeResult, error)
}

// IntakeUseCase performs three sequential inserts. There is no transaction:
// when a later insert fails the earlier rows are deleted on a best-effort
// basis.
type IntakeUseCase struct {
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	orders   interfaces.IServiceOrderRepository
	now      func() time.Time
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(clients interfaces.IClientRepository, vehicles interfaces.IVehicleRepository, orders interfaces.IServiceOrderRepository) *IntakeUseCase {
	return &IntakeUseCase{clients: clients, vehicles: vehicles, orders: orders, now: time.Now}
}

func (u *IntakeUseCase) QuickCreate(ctx context.Context, in IntakeInput) (IntakeResult, error) {
	log := zap.L()
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return IntakeResult{}, ErrInvalidClientName
	}
	plate := NormalizePlate(in.Plate)
	if plate == "" {
		return IntakeResult{}, ErrInvalidPlate
	}

	now := u.now().UTC()
	client, err := u.clients.Create(ctx, entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(in.ClientPhone),
		Email:     strings.TrimSpace(in.ClientEmail),
		CreatedAt: now,
	})
	if err != nil {
		log.Error("[intake][usecase] client insert failed", zap.Error(err))
		return IntakeResult{}, err
	}

	vehicle, err := u.vehicles.Create(ctx, entities.Vehicle{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Plate:     plate,
		Brand:     strings.TrimSpace(in.Brand),
		Model:     strings.TrimSpace(in.Model),
		Year:      in.Year,
		CreatedAt: now,
	})
	if err != nil {
		log.Error("[intake][usecase] vehicle insert failed; rolling back client", zap.Error(err))
		u.rollback(ctx, client.ID, "")
		return IntakeResult{}, err
	}

	number, err := u.orders.NextOrderNumber(ctx)
	if err != nil {
		log.Error("[intake][usecase] order number allocation failed; rolling back", zap.Error(err))
		u.rollback(ctx, client.ID, vehicle.ID)
		return IntakeResult{}, err
	}

	order := entities.ServiceOrder{
		ID:                  uuid.NewString(),
		OrderNumber:         number,
		ClientID:            client.ID,
		VehicleID:           vehicle.ID,
		MechanicID:          strings.TrimSpace(in.MechanicID),
		Status:              entities.OrderStatusDiagnostico,
		Total:               in.Total,
		CreatedAt:           now,
		EstimatedCompletion: in.EstimatedCompletion,
	}
	if desc := strings.TrimSpace(in.ProblemDescription); desc != "" {
		order.ProblemDescription = &desc
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, entities.ServiceOrderItem{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			Description: strings.TrimSpace(it.Description),
			Status:      entities.ItemStatusPendente,
			TotalPrice:  it.TotalPrice,
			Quantidade:  it.Quantidade,
		})
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Error("[intake][usecase] order insert failed; rolling back", zap.Error(err))
		u.rollback(ctx, client.ID, vehicle.ID)
		return IntakeResult{}, err
	}
	created.Client = &client
	created.Vehicle = &vehicle

	log.Info("[intake][usecase] quick-create success",
		zap.String("order_id", created.ID),
		zap.Int64("order_number", created.OrderNumber),
	)
	return IntakeResult{
		Client:   client,
		Vehicle:  vehicle,
		Order:    created,
		Category: entities.ClassifyCategory(created.ProblemDescription),
	}, nil
}

func (u *IntakeUseCase) rollback(ctx context.Context, clientID, vehicleID string) {
	if vehicleID != "" {
		if err := u.vehicles.Delete(ctx, vehicleID); err != nil {
			zap.L().Warn("[intake][usecase] vehicle rollback failed", zap.String("vehicle_id", vehicleID), zap.Error(err))
		}
	}
	if err := u.clients.Delete(ctx, clientID); err != nil {
		zap.L().Warn("[intake][usecase] client rollback failed", zap.String("client_id", clientID), zap.Error(err))
	}
}

// NormalizePlate upper-cases a plate and drops separators ("abc-1d23" ->
// "ABC1D23").
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(plate) {
		if r == '-' || r == ' ' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
