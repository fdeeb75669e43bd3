package kanban

import (
	"errors"

	"oficina/internal/domain/entities"
)

var (
	ErrUnknownStage = errors.New("unknown kanban stage")
	ErrCardNotFound = errors.New("order not found in source stage")
)

// Move asks for an order to go from one stage to another.
type Move struct {
	OrderID string           `json:"order_id"`
	From    entities.StageID `json:"from"`
	To      entities.StageID `json:"to"`
}

func (m Move) IsNoop() bool {
	return m.From == m.To
}

// ApplyMove is the pure transition (board, move) -> board. The input board
// is never modified. A no-op move returns the board unchanged and moved=false.
func ApplyMove(b Board, m Move) (next Board, card Card, moved bool, err error) {
	if !entities.IsKnownStage(m.From) || !entities.IsKnownStage(m.To) {
		return b, Card{}, false, ErrUnknownStage
	}
	if m.IsNoop() {
		return b, Card{}, false, nil
	}

	next = b.clone()
	idx := next.columnIndex()
	fromIdx, ok := idx[m.From]
	if !ok {
		return b, Card{}, false, ErrUnknownStage
	}
	toIdx, ok := idx[m.To]
	if !ok {
		return b, Card{}, false, ErrUnknownStage
	}

	src := next.Columns[fromIdx].Cards
	pos := -1
	for i, c := range src {
		if c.OrderID == m.OrderID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return b, Card{}, false, ErrCardNotFound
	}

	card = src[pos]
	next.Columns[fromIdx].Cards = append(src[:pos:pos], src[pos+1:]...)
	next.Columns[toIdx].Cards = append(next.Columns[toIdx].Cards, card)
	return next, card, true, nil
}
