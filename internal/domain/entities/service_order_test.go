package entities

import "testing"

func f64(v float64) *float64 { return &v }

func TestApprovedValue(t *testing.T) {
	t.Run("falls back to total", func(t *testing.T) {
		o := ServiceOrder{Total: f64(8000), Items: []ServiceOrderItem{{Status: "pendente", TotalPrice: f64(1000)}}}
		if got := ApprovedValue(o); got != 8000 {
			t.Fatalf("expected 8000, got %v", got)
		}
	})

	t.Run("sums approved items only", func(t *testing.T) {
		o := ServiceOrder{Total: f64(5000), Items: []ServiceOrderItem{
			{Status: "aprovado", TotalPrice: f64(1000)},
			{Status: "aprovado", TotalPrice: f64(2000)},
			{Status: "recusado", TotalPrice: f64(500)},
		}}
		if got := o.ApprovedValue(); got != 3000 {
			t.Fatalf("expected 3000, got %v", got)
		}
	})

	t.Run("empty order", func(t *testing.T) {
		if got := ApprovedValue(ServiceOrder{}); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("status is case insensitive and nil price counts as zero", func(t *testing.T) {
		o := ServiceOrder{Total: f64(900), Items: []ServiceOrderItem{
			{Status: "Aprovado", TotalPrice: f64(150)},
			{Status: "APROVADO"},
		}}
		if got := o.ApprovedValue(); got != 150 {
			t.Fatalf("expected 150, got %v", got)
		}
	})

	t.Run("approved items with nil prices do not fall back", func(t *testing.T) {
		o := ServiceOrder{Total: f64(900), Items: []ServiceOrderItem{{Status: "aprovado"}}}
		if got := o.ApprovedValue(); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("quantidade is not applied", func(t *testing.T) {
		// total_price is taken as-is even when quantidade > 1; kept until the
		// intended semantics of quantidade are confirmed.
		o := ServiceOrder{Items: []ServiceOrderItem{{Status: "aprovado", TotalPrice: f64(100), Quantidade: 4}}}
		if got := o.ApprovedValue(); got != 100 {
			t.Fatalf("expected 100, got %v", got)
		}
	})
}

func TestServiceOrderFlags(t *testing.T) {
	o := ServiceOrder{Status: "em_execucao", Items: []ServiceOrderItem{{Status: "Pendente"}}}
	if !o.HasPendingItems() || !o.IsActive() {
		t.Fatalf("expected active order with pending items")
	}
	done := ServiceOrder{Status: "concluido"}
	if done.IsActive() {
		t.Fatalf("legacy concluido must count as delivered")
	}
	if !IsChargeable("pronto") || IsChargeable("orcamento") {
		t.Fatalf("unexpected chargeable rule")
	}
}
