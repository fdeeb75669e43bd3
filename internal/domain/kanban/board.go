// Package kanban projects service orders onto the staff board and applies
// stage moves as pure state transitions.
package kanban

import (
	"fmt"
	"time"

	"oficina/internal/domain/entities"
)

const entryTimeLayout = "02/01 15:04"

// Card is the lightweight projection of a service order shown in a column.
type Card struct {
	OrderID         string    `json:"order_id"`
	OrderNumber     int64     `json:"order_number"`
	Plate           string    `json:"plate"`
	Model           string    `json:"model"`
	Brand           string    `json:"brand"`
	ClientName      string    `json:"client_name"`
	Service         string    `json:"service"`
	Category        string    `json:"category"`
	EntryTime       string    `json:"entry_time"`
	Total           float64   `json:"total"`
	ApprovedValue   float64   `json:"approved_value"`
	HasPendingItems bool      `json:"has_pending_items"`
	Late            bool      `json:"late"`
	CreatedAt       time.Time `json:"created_at"`
}

// Column is one kanban stage with its cards in fetch order.
type Column struct {
	Stage entities.StageID `json:"stage"`
	Title string           `json:"title"`
	Cards []Card           `json:"cards"`
}

// Board holds one column per stage, in entities.Stages() order.
type Board struct {
	Columns []Column `json:"columns"`
}

// NewBoard returns a board with every stage present and no cards.
func NewBoard() Board {
	stages := entities.Stages()
	cols := make([]Column, len(stages))
	for i, s := range stages {
		cols[i] = Column{Stage: s, Title: entities.StageTitle(s), Cards: []Card{}}
	}
	return Board{Columns: cols}
}

// BuildBoard groups fetched orders by the status to stage mapping.
func BuildBoard(orders []entities.ServiceOrder, now time.Time, loc *time.Location) Board {
	b := NewBoard()
	index := b.columnIndex()
	for _, o := range orders {
		stage := entities.StageForFetched(string(o.Status))
		i := index[stage]
		b.Columns[i].Cards = append(b.Columns[i].Cards, NewCard(o, now, loc))
	}
	return b
}

// NewCard builds the card projection of a single order.
func NewCard(o entities.ServiceOrder, now time.Time, loc *time.Location) Card {
	if loc == nil {
		loc = time.UTC
	}
	c := Card{
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		Category:        entities.ClassifyCategory(o.ProblemDescription),
		ApprovedValue:   o.ApprovedValue(),
		HasPendingItems: o.HasPendingItems(),
		CreatedAt:       o.CreatedAt,
	}
	if o.Vehicle != nil {
		c.Plate = o.Vehicle.Plate
		c.Model = o.Vehicle.Model
		c.Brand = o.Vehicle.Brand
	}
	if o.Client != nil {
		c.ClientName = o.Client.Name
	}
	if o.ProblemDescription != nil && *o.ProblemDescription != "" {
		c.Service = *o.ProblemDescription
	} else {
		c.Service = fmt.Sprintf("OS #%d", o.OrderNumber)
	}
	if !o.CreatedAt.IsZero() {
		c.EntryTime = o.CreatedAt.In(loc).Format(entryTimeLayout)
	}
	if o.Total != nil {
		c.Total = *o.Total
	}
	if o.EstimatedCompletion != nil && o.IsActive() {
		local := now.In(loc)
		startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		c.Late = o.EstimatedCompletion.Before(startOfDay)
	}
	return c
}

// Column returns the column of a stage.
func (b Board) Column(stage entities.StageID) (Column, bool) {
	for _, c := range b.Columns {
		if c.Stage == stage {
			return c, true
		}
	}
	return Column{}, false
}

// StageOfOrder finds the column currently holding an order.
func (b Board) StageOfOrder(orderID string) (entities.StageID, bool) {
	for _, c := range b.Columns {
		for _, card := range c.Cards {
			if card.OrderID == orderID {
				return c.Stage, true
			}
		}
	}
	return "", false
}

// TotalValue sums the approved value of the cards of a stage.
func (b Board) TotalValue(stage entities.StageID) float64 {
	col, ok := b.Column(stage)
	if !ok {
		return 0
	}
	sum := 0.0
	for _, c := range col.Cards {
		sum += c.ApprovedValue
	}
	return sum
}

// GrandTotal sums the approved value over every active stage.
func (b Board) GrandTotal() float64 {
	sum := 0.0
	for _, col := range b.Columns {
		if col.Stage == entities.StageEntregue {
			continue
		}
		sum += b.TotalValue(col.Stage)
	}
	return sum
}

func (b Board) columnIndex() map[entities.StageID]int {
	idx := make(map[entities.StageID]int, len(b.Columns))
	for i, c := range b.Columns {
		idx[c.Stage] = i
	}
	return idx
}

func (b Board) clone() Board {
	cols := make([]Column, len(b.Columns))
	for i, c := range b.Columns {
		cards := make([]Card, len(c.Cards))
		copy(cards, c.Cards)
		cols[i] = Column{Stage: c.Stage, Title: c.Title, Cards: cards}
	}
	return Board{Columns: cols}
}
