package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"oficina/internal/domain/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repository_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func f64(v float64) *float64 { return &v }

func seedOrder(t *testing.T, db *gorm.DB) entities.ServiceOrder {
	t.Helper()
	ctx := context.Background()
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	client, err := NewClientGormRepository(db).Create(ctx, entities.Client{ID: "c-1", Name: "Maria", CreatedAt: created})
	if err != nil {
		t.Fatalf("client create returned error: %v", err)
	}
	vehicle, err := NewVehicleGormRepository(db).Create(ctx, entities.Vehicle{ID: "v-1", ClientID: client.ID, Plate: "ABC1D23", Model: "Uno", CreatedAt: created})
	if err != nil {
		t.Fatalf("vehicle create returned error: %v", err)
	}

	desc := "Troca de pastilha de freio"
	order, err := NewServiceOrderGormRepository(db).Create(ctx, entities.ServiceOrder{
		ID:                 "os-1",
		OrderNumber:        1,
		ClientID:           client.ID,
		VehicleID:          vehicle.ID,
		Status:             entities.OrderStatusOrcamento,
		Total:              f64(800),
		ProblemDescription: &desc,
		CreatedAt:          created,
		Items: []entities.ServiceOrderItem{
			{ID: "it-1", Description: "Pastilha", Status: entities.ItemStatusPendente, TotalPrice: f64(300), Quantidade: 2},
			{ID: "it-2", Description: "Disco", Status: entities.ItemStatusPendente, TotalPrice: f64(500), Quantidade: 2},
		},
	})
	if err != nil {
		t.Fatalf("order create returned error: %v", err)
	}
	return order
}

func TestServiceOrderGormRepository_ListWithDetails(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db)
	repo := NewServiceOrderGormRepository(db)

	orders, err := repo.ListWithDetails(context.Background())
	if err != nil {
		t.Fatalf("ListWithDetails returned error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	o := orders[0]
	if o.Client == nil || o.Client.Name != "Maria" {
		t.Fatalf("expected joined client, got %+v", o.Client)
	}
	if o.Vehicle == nil || o.Vehicle.Plate != "ABC1D23" {
		t.Fatalf("expected joined vehicle, got %+v", o.Vehicle)
	}
	if len(o.Items) != 2 || o.Items[0].ID != "it-1" || o.Items[0].OrderID != "os-1" {
		t.Fatalf("unexpected items: %+v", o.Items)
	}
}

func TestServiceOrderGormRepository_GetByIDMissing(t *testing.T) {
	repo := NewServiceOrderGormRepository(setupTestDB(t))

	o, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if o.ID != "" {
		t.Fatalf("expected zero order, got %+v", o)
	}
}

func TestServiceOrderGormRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db)
	repo := NewServiceOrderGormRepository(db)
	ctx := context.Background()

	if err := repo.UpdateStatus(ctx, "os-1", entities.OrderStatusEmExecucao, nil); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	o, _ := repo.GetByID(ctx, "os-1")
	if o.Status != entities.OrderStatusEmExecucao || o.CompletedAt != nil {
		t.Fatalf("unexpected order after move: %+v", o)
	}

	done := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	if err := repo.UpdateStatus(ctx, "os-1", entities.OrderStatusEntregue, &done); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	o, _ = repo.GetByID(ctx, "os-1")
	if o.Status != entities.OrderStatusEntregue || o.CompletedAt == nil || !o.CompletedAt.Equal(done) {
		t.Fatalf("unexpected order after delivery: %+v", o)
	}

	if err := repo.UpdateStatus(ctx, "missing", entities.OrderStatusPronto, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceOrderGormRepository_UpdateItemStatus(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db)
	repo := NewServiceOrderGormRepository(db)
	ctx := context.Background()

	o, err := repo.UpdateItemStatus(ctx, "os-1", "it-1", entities.ItemStatusAprovado)
	if err != nil {
		t.Fatalf("UpdateItemStatus returned error: %v", err)
	}
	if o.ApprovedValue() != 300 {
		t.Fatalf("expected approved value 300, got %v", o.ApprovedValue())
	}

	o, err = repo.UpdateItemStatus(ctx, "os-2", "it-1", entities.ItemStatusAprovado)
	if err != nil {
		t.Fatalf("UpdateItemStatus returned error: %v", err)
	}
	if o.ID != "" {
		t.Fatalf("item of another order must not be updated, got %+v", o)
	}
}

func TestServiceOrderGormRepository_NextOrderNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceOrderGormRepository(db)

	n, err := repo.NextOrderNumber(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected 1 on empty table, got %d err=%v", n, err)
	}

	seedOrder(t, db)
	n, err = repo.NextOrderNumber(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("expected 2, got %d err=%v", n, err)
	}
}

func TestClientGormRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientGormRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, entities.Client{ID: "c-9", Name: "Joao"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Delete(ctx, "c-9"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	var count int64
	db.Model(&ClientModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected client deleted, got %d rows", count)
	}
}

func TestOrderPaymentGormRepository(t *testing.T) {
	repo := NewOrderPaymentGormRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"mp-2", "mp-1"} {
		_, err := repo.Create(ctx, entities.OrderPayment{
			ID:           id,
			OrderID:      "os-1",
			Amount:       100,
			Date:         base.Add(-time.Duration(i) * time.Hour),
			Status:       entities.PaymentStatusAprovado,
			MPPayloadRaw: json.RawMessage(`{"status":"approved"}`),
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	got, err := repo.GetByID(ctx, "mp-1")
	if err != nil || got.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected payment: %+v err=%v", got, err)
	}
	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero payment, got %+v err=%v", missing, err)
	}

	list, err := repo.ListByOrderID(ctx, "os-1")
	if err != nil {
		t.Fatalf("ListByOrderID returned error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "mp-1" {
		t.Fatalf("expected oldest first, got %+v", list)
	}
}

func TestSystemConfigGormRepository(t *testing.T) {
	repo := NewSystemConfigGormRepository(setupTestDB(t))
	ctx := context.Background()

	if _, found, err := repo.GetValue(ctx, "meta_mensal"); err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}
	if err := repo.SetValue(ctx, "meta_mensal", "50000"); err != nil {
		t.Fatalf("SetValue returned error: %v", err)
	}
	if err := repo.SetValue(ctx, "meta_mensal", "60000"); err != nil {
		t.Fatalf("SetValue returned error: %v", err)
	}
	v, found, err := repo.GetValue(ctx, "meta_mensal")
	if err != nil || !found || v != "60000" {
		t.Fatalf("unexpected value %q found=%v err=%v", v, found, err)
	}
}
