package request

import (
	"strings"

	"oficina/internal/domain/entities"
)

// MoveOrderRequest is the drop of a card onto another column.
type MoveOrderRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

func (r MoveOrderRequest) FromStage() entities.StageID {
	return entities.StageID(strings.ToLower(strings.TrimSpace(r.From)))
}

func (r MoveOrderRequest) ToStage() entities.StageID {
	return entities.StageID(strings.ToLower(strings.TrimSpace(r.To)))
}
