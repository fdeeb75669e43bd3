package response

import (
	"time"

	"oficina/internal/domain/kanban"
	"oficina/internal/usecase"
)

type ColumnResponse struct {
	Stage      string        `json:"stage"`
	Title      string        `json:"title"`
	Count      int           `json:"count"`
	TotalValue float64       `json:"total_value"`
	Cards      []kanban.Card `json:"cards"`
}

type BoardResponse struct {
	Columns          []ColumnResponse `json:"columns"`
	GrandTotal       float64          `json:"grand_total"`
	MonthlyDelivered float64          `json:"monthly_delivered"`
	RefreshedAt      time.Time        `json:"refreshed_at"`
	Stale            bool             `json:"stale,omitempty"`
}

type MoveOrderResponse struct {
	Moved     bool          `json:"moved"`
	Persisted bool          `json:"persisted"`
	Board     BoardResponse `json:"board"`
}

func FromSnapshot(s usecase.BoardSnapshot) BoardResponse {
	cols := make([]ColumnResponse, 0, len(s.Board.Columns))
	for _, c := range s.Board.Columns {
		cards := c.Cards
		if cards == nil {
			cards = []kanban.Card{}
		}
		cols = append(cols, ColumnResponse{
			Stage:      string(c.Stage),
			Title:      c.Title,
			Count:      len(cards),
			TotalValue: s.Board.TotalValue(c.Stage),
			Cards:      cards,
		})
	}
	return BoardResponse{
		Columns:          cols,
		GrandTotal:       s.Board.GrandTotal(),
		MonthlyDelivered: s.MonthlyDelivered,
		RefreshedAt:      s.RefreshedAt,
	}
}

func FromMoveResult(r usecase.MoveResult) MoveOrderResponse {
	return MoveOrderResponse{
		Moved:     r.Moved,
		Persisted: r.Persisted,
		Board:     FromSnapshot(r.Snapshot),
	}
}
