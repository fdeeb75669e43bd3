package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina/internal/domain/entities"
	mock_interfaces "oficina/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type intakeMocks struct {
	clients  *mock_interfaces.MockIClientRepository
	vehicles *mock_interfaces.MockIVehicleRepository
	orders   *mock_interfaces.MockIServiceOrderRepository
}

func newIntake(t *testing.T) (*IntakeUseCase, intakeMocks) {
	ctrl := gomock.NewController(t)
	m := intakeMocks{
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		vehicles: mock_interfaces.NewMockIVehicleRepository(ctrl),
		orders:   mock_interfaces.NewMockIServiceOrderRepository(ctrl),
	}
	uc := NewIntakeUseCase(m.clients, m.vehicles, m.orders)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func validIntake() IntakeInput {
	return IntakeInput{
		ClientName:         "  Maria Souza ",
		ClientPhone:        "11999990000",
		Plate:              "abc-1d23",
		Brand:              "Fiat",
		Model:              "Uno",
		Year:               2015,
		ProblemDescription: "Troca de óleo e filtro",
		Items: []IntakeItem{
			{Description: "Óleo 5W30", TotalPrice: f64(180), Quantidade: 4},
		},
	}
}

func TestIntakeUseCase_QuickCreate_Success(t *testing.T) {
	uc, m := newIntake(t)

	m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Client) (entities.Client, error) {
			if c.Name != "Maria Souza" || c.ID == "" {
				t.Fatalf("unexpected client: %+v", c)
			}
			return c, nil
		},
	)
	m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
			if v.Plate != "ABC1D23" || v.ClientID == "" {
				t.Fatalf("unexpected vehicle: %+v", v)
			}
			return v, nil
		},
	)
	m.orders.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(42), nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			if o.Status != entities.OrderStatusDiagnostico || o.OrderNumber != 42 {
				t.Fatalf("unexpected order: %+v", o)
			}
			if len(o.Items) != 1 || o.Items[0].Status != entities.ItemStatusPendente || o.Items[0].OrderID != o.ID {
				t.Fatalf("unexpected items: %+v", o.Items)
			}
			if !o.CreatedAt.Equal(fixedNow) {
				t.Fatalf("unexpected created_at: %v", o.CreatedAt)
			}
			return o, nil
		},
	)

	res, err := uc.QuickCreate(context.Background(), validIntake())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.VehicleID != res.Vehicle.ID || res.Order.ClientID != res.Client.ID {
		t.Fatalf("order not linked: %+v", res.Order)
	}
	if res.Order.Client == nil || res.Order.Vehicle == nil {
		t.Fatalf("expected joined client and vehicle")
	}
	if res.Category != entities.CategoryTrocaDeOleo {
		t.Fatalf("expected %q, got %q", entities.CategoryTrocaDeOleo, res.Category)
	}
}

func TestIntakeUseCase_QuickCreate_Validation(t *testing.T) {
	uc, _ := newIntake(t)

	in := validIntake()
	in.ClientName = "   "
	if _, err := uc.QuickCreate(context.Background(), in); !errors.Is(err, ErrInvalidClientName) {
		t.Fatalf("expected ErrInvalidClientName, got %v", err)
	}

	in = validIntake()
	in.Plate = " - "
	if _, err := uc.QuickCreate(context.Background(), in); !errors.Is(err, ErrInvalidPlate) {
		t.Fatalf("expected ErrInvalidPlate, got %v", err)
	}
}

func TestIntakeUseCase_QuickCreate_Rollback(t *testing.T) {
	boom := errors.New("boom")
	passClient := func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil }
	passVehicle := func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil }

	t.Run("client insert fails", func(t *testing.T) {
		uc, m := newIntake(t)
		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, boom)

		if _, err := uc.QuickCreate(context.Background(), validIntake()); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("vehicle insert fails", func(t *testing.T) {
		uc, m := newIntake(t)
		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passClient)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, boom)
		m.clients.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.QuickCreate(context.Background(), validIntake()); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("order insert fails", func(t *testing.T) {
		uc, m := newIntake(t)
		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passClient)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passVehicle)
		m.orders.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(1), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, boom)
		gomock.InOrder(
			m.vehicles.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
			// rollback keeps going after a failed delete
			m.clients.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("gone")),
		)

		if _, err := uc.QuickCreate(context.Background(), validIntake()); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("order number fails", func(t *testing.T) {
		uc, m := newIntake(t)
		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passClient)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passVehicle)
		m.orders.EXPECT().NextOrderNumber(gomock.Any()).Return(int64(0), boom)
		m.vehicles.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.clients.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.QuickCreate(context.Background(), validIntake()); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestNormalizePlate(t *testing.T) {
	tests := map[string]string{
		"abc-1d23":  "ABC1D23",
		" abc 1234": "ABC1234",
		"ABC.1234":  "ABC1234",
		"":          "",
	}
	for in, want := range tests {
		if got := NormalizePlate(in); got != want {
			t.Fatalf("NormalizePlate(%q) = %q, want %q", in, got, want)
		}
	}
}
