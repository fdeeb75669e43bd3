package kanban

import (
	"testing"
	"time"

	"oficina/internal/domain/entities"
)

func at(t time.Time) *time.Time { return &t }

func TestMonthlyDelivered(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, loc)

	orders := []entities.ServiceOrder{
		{ID: "first-instant", Status: "entregue", Total: f64(100), CompletedAt: at(time.Date(2026, 10, 1, 0, 0, 0, 0, loc))},
		{ID: "last-instant", Status: "entregue", Total: f64(200), CompletedAt: at(time.Date(2026, 10, 31, 23, 59, 59, 999999999, loc))},
		{ID: "approved-items", Status: "entregue", Total: f64(9999), CompletedAt: at(time.Date(2026, 10, 10, 0, 0, 0, 0, loc)),
			Items: []entities.ServiceOrderItem{{Status: "aprovado", TotalPrice: f64(40)}}},
		{ID: "legacy", Status: "concluido", Total: f64(5), CompletedAt: at(time.Date(2026, 10, 11, 0, 0, 0, 0, loc))},
		// 2026-10-01 02:00 UTC is still September in BRT
		{ID: "previous-month-local", Status: "entregue", Total: f64(1000), CompletedAt: at(time.Date(2026, 10, 1, 2, 0, 0, 0, time.UTC))},
		{ID: "next-month", Status: "entregue", Total: f64(1000), CompletedAt: at(time.Date(2026, 11, 1, 0, 0, 0, 0, loc))},
		{ID: "not-delivered", Status: "pronto", Total: f64(1000), CompletedAt: at(time.Date(2026, 10, 5, 0, 0, 0, 0, loc))},
		{ID: "no-completion", Status: "entregue", Total: f64(1000)},
	}

	if got := MonthlyDelivered(orders, now, loc); got != 345 {
		t.Fatalf("expected 345, got %v", got)
	}
	if got := len(DeliveredInMonth(orders, now, loc)); got != 4 {
		t.Fatalf("expected 4 delivered orders, got %d", got)
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), time.UTC)
	if !start.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC)) {
		t.Fatalf("unexpected end %v", end)
	}
}
