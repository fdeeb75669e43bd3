package repository

import (
	"testing"
	"time"

	"oficina/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/go-cmp/cmp"
)

func TestServiceOrderItemConversion(t *testing.T) {
	done := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	desc := "Revisão dos 20 mil"
	in := entities.ServiceOrder{
		ID:                 "os-1",
		OrderNumber:        12,
		ClientID:           "c-1",
		VehicleID:          "v-1",
		Status:             "concluido",
		ProblemDescription: &desc,
		CreatedAt:          done.Add(-72 * time.Hour),
		CompletedAt:        &done,
		Items: []entities.ServiceOrderItem{
			{ID: "it-1", OrderID: "os-1", Description: "Filtro", Status: entities.ItemStatusAprovado, TotalPrice: f64(45.5), Quantidade: 1},
			{ID: "it-2", OrderID: "os-1", Description: "Mão de obra", Status: entities.ItemStatusPendente},
		},
	}

	av, err := attributevalue.MarshalMap(toServiceOrderItem(in))
	if err != nil {
		t.Fatalf("MarshalMap returned error: %v", err)
	}
	if _, ok := av["total"]; ok {
		t.Fatalf("nil total must be omitted")
	}
	if _, ok := av["estimated_completion"]; ok {
		t.Fatalf("nil estimated_completion must be omitted")
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("UnmarshalMap returned error: %v", err)
	}
	if diff := cmp.Diff(in, fromServiceOrderItem(it)); diff != "" {
		t.Fatalf("conversion mismatch (-want +got):\n%s", diff)
	}
}

func TestDynamoTableSpecs(t *testing.T) {
	t.Setenv("ORDER_PAYMENTS_TABLE", "oficina-payments")

	specs := DynamoTableSpecs()
	byName := map[string]bool{}
	for _, s := range specs {
		byName[aws.ToString(s.TableName)] = true
		if s.BillingMode != types.BillingModePayPerRequest {
			t.Fatalf("expected on-demand billing for %s", aws.ToString(s.TableName))
		}
	}
	for _, want := range []string{"service_orders", "clients", "vehicles", "system_config", "oficina-payments"} {
		if !byName[want] {
			t.Fatalf("missing table spec %s", want)
		}
	}

	payments := specs[len(specs)-1]
	if len(payments.GlobalSecondaryIndexes) != 1 || aws.ToString(payments.GlobalSecondaryIndexes[0].IndexName) != orderPaymentsOrderIDIndex {
		t.Fatalf("expected %s on payments table", orderPaymentsOrderIDIndex)
	}
}

func TestUniqueNonEmpty(t *testing.T) {
	got := uniqueNonEmpty([]string{"a", "", "b", "a"})
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestSortByCreatedAt(t *testing.T) {
	base := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	orders := []entities.ServiceOrder{
		{ID: "os-3", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "os-1", CreatedAt: base},
		{ID: "os-2a", CreatedAt: base.Add(time.Hour)},
		{ID: "os-2b", CreatedAt: base.Add(time.Hour)},
	}

	sortByCreatedAt(orders)

	got := make([]string, 0, len(orders))
	for _, o := range orders {
		got = append(got, o.ID)
	}
	if diff := cmp.Diff([]string{"os-1", "os-2a", "os-2b", "os-3"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
