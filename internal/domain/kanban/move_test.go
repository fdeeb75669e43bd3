package kanban

import (
	"errors"
	"testing"
	"time"

	"oficina/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestApplyMove(t *testing.T) {
	board := BuildBoard(sampleOrders(), time.Now(), time.UTC)
	before := board.clone()

	next, card, moved, err := ApplyMove(board, Move{OrderID: "os-1", From: entities.StageOrcamento, To: entities.StageEntregue})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved || card.OrderID != "os-1" {
		t.Fatalf("expected os-1 to move, got moved=%v card=%+v", moved, card)
	}

	orc, _ := next.Column(entities.StageOrcamento)
	if diff := cmp.Diff([]string{"os-3", "os-4"}, orderIDs(orc)); diff != "" {
		t.Fatalf("source column (-want +got):\n%s", diff)
	}
	done, _ := next.Column(entities.StageEntregue)
	if diff := cmp.Diff([]string{"os-1"}, orderIDs(done)); diff != "" {
		t.Fatalf("destination column (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(before, board); diff != "" {
		t.Fatalf("input board was mutated (-before +after):\n%s", diff)
	}
}

func TestApplyMoveAppendsToDestination(t *testing.T) {
	board := BuildBoard(sampleOrders(), time.Now(), time.UTC)
	next, _, _, err := ApplyMove(board, Move{OrderID: "os-2", From: entities.StageExecucao, To: entities.StageOrcamento})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orc, _ := next.Column(entities.StageOrcamento)
	if diff := cmp.Diff([]string{"os-1", "os-3", "os-4", "os-2"}, orderIDs(orc)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestApplyMoveNoop(t *testing.T) {
	board := BuildBoard(sampleOrders(), time.Now(), time.UTC)
	next, _, moved, err := ApplyMove(board, Move{OrderID: "os-1", From: entities.StageOrcamento, To: entities.StageOrcamento})
	if err != nil || moved {
		t.Fatalf("expected no-op, got moved=%v err=%v", moved, err)
	}
	if diff := cmp.Diff(board, next); diff != "" {
		t.Fatalf("no-op changed the board:\n%s", diff)
	}
}

func TestApplyMoveErrors(t *testing.T) {
	board := BuildBoard(sampleOrders(), time.Now(), time.UTC)

	_, _, _, err := ApplyMove(board, Move{OrderID: "os-1", From: "nope", To: entities.StageEntregue})
	if !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}

	_, _, _, err = ApplyMove(board, Move{OrderID: "os-2", From: entities.StageOrcamento, To: entities.StageEntregue})
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}
