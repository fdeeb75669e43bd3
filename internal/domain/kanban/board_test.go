package kanban

import (
	"testing"
	"time"

	"oficina/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func sampleOrders() []entities.ServiceOrder {
	created := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)
	return []entities.ServiceOrder{
		{
			ID: "os-1", OrderNumber: 101, Status: "orcamento", Total: f64(1200), CreatedAt: created,
			ProblemDescription: str("Troca de óleo"),
			Vehicle:            &entities.Vehicle{Plate: "ABC1D23", Model: "Onix", Brand: "Chevrolet"},
			Client:             &entities.Client{Name: "Maria"},
		},
		{ID: "os-2", OrderNumber: 102, Status: "em_execucao", Total: f64(300), CreatedAt: created},
		{ID: "os-3", OrderNumber: 103, Status: "status_que_nao_existe", Total: f64(50), CreatedAt: created},
		{ID: "os-4", OrderNumber: 104, Status: "orcamento", CreatedAt: created, Items: []entities.ServiceOrderItem{
			{Status: "aprovado", TotalPrice: f64(700)},
			{Status: "pendente", TotalPrice: f64(100)},
		}},
	}
}

func orderIDs(col Column) []string {
	ids := make([]string, 0, len(col.Cards))
	for _, c := range col.Cards {
		ids = append(ids, c.OrderID)
	}
	return ids
}

func TestBuildBoardGroupsByStage(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	b := BuildBoard(sampleOrders(), now, saoPaulo)

	require.Len(t, b.Columns, len(entities.Stages()))

	orc, ok := b.Column(entities.StageOrcamento)
	require.True(t, ok)
	if diff := cmp.Diff([]string{"os-1", "os-3", "os-4"}, orderIDs(orc)); diff != "" {
		t.Fatalf("orcamento column mismatch (-want +got):\n%s", diff)
	}

	exec, _ := b.Column(entities.StageExecucao)
	assert.Equal(t, []string{"os-2"}, orderIDs(exec))

	empty, _ := b.Column(entities.StageEntregue)
	assert.NotNil(t, empty.Cards)
	assert.Empty(t, empty.Cards)
	assert.Equal(t, "Entregue", empty.Title)
}

func TestNewCardProjection(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	orders := sampleOrders()

	card := NewCard(orders[0], now, saoPaulo)
	want := Card{
		OrderID:       "os-1",
		OrderNumber:   101,
		Plate:         "ABC1D23",
		Model:         "Onix",
		Brand:         "Chevrolet",
		ClientName:    "Maria",
		Service:       "Troca de óleo",
		Category:      entities.CategoryTrocaDeOleo,
		EntryTime:     "15/10 09:30",
		Total:         1200,
		ApprovedValue: 1200,
		CreatedAt:     orders[0].CreatedAt,
	}
	if diff := cmp.Diff(want, card); diff != "" {
		t.Fatalf("card mismatch (-want +got):\n%s", diff)
	}

	noDesc := NewCard(orders[1], now, saoPaulo)
	assert.Equal(t, "OS #102", noDesc.Service)
	assert.Equal(t, entities.CategoryGeral, noDesc.Category)

	withItems := NewCard(orders[3], now, saoPaulo)
	assert.Equal(t, 700.0, withItems.ApprovedValue)
	assert.True(t, withItems.HasPendingItems)
}

func TestNewCardLateFlag(t *testing.T) {
	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)
	earlierToday := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	late := NewCard(entities.ServiceOrder{Status: "em_execucao", EstimatedCompletion: &yesterday}, now, time.UTC)
	assert.True(t, late.Late)

	today := NewCard(entities.ServiceOrder{Status: "em_execucao", EstimatedCompletion: &earlierToday}, now, time.UTC)
	assert.False(t, today.Late)

	delivered := NewCard(entities.ServiceOrder{Status: "entregue", EstimatedCompletion: &yesterday}, now, time.UTC)
	assert.False(t, delivered.Late)
}

func TestBoardTotals(t *testing.T) {
	b := BuildBoard(sampleOrders(), time.Now(), time.UTC)
	assert.Equal(t, 1950.0, b.TotalValue(entities.StageOrcamento))
	assert.Equal(t, 300.0, b.TotalValue(entities.StageExecucao))
	assert.Equal(t, 2250.0, b.GrandTotal())

	stage, ok := b.StageOfOrder("os-2")
	assert.True(t, ok)
	assert.Equal(t, entities.StageExecucao, stage)
}
