package response

import (
	"time"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase"
)

type ServiceOrderItemResponse struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	TotalPrice  *float64 `json:"total_price"`
	Quantidade  int      `json:"quantidade"`
}

type ServiceOrderResponse struct {
	ID                  string                     `json:"id"`
	OrderNumber         int64                      `json:"order_number"`
	ClientID            string                     `json:"client_id"`
	VehicleID           string                     `json:"vehicle_id"`
	Status              string                     `json:"status"`
	Stage               string                     `json:"stage"`
	Category            string                     `json:"category"`
	Total               *float64                   `json:"total"`
	ApprovedValue       float64                    `json:"approved_value"`
	HasPendingItems     bool                       `json:"has_pending_items"`
	CreatedAt           time.Time                  `json:"created_at"`
	CompletedAt         *time.Time                 `json:"completed_at,omitempty"`
	EstimatedCompletion *time.Time                 `json:"estimated_completion,omitempty"`
	Items               []ServiceOrderItemResponse `json:"items"`
}

type IntakeResponse struct {
	ClientID  string               `json:"client_id"`
	VehicleID string               `json:"vehicle_id"`
	Order     ServiceOrderResponse `json:"order"`
}

type ClassifyResponse struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := ServiceOrderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		ClientID:            o.ClientID,
		VehicleID:           o.VehicleID,
		Status:              string(o.Status),
		Stage:               string(entities.StageForFetched(string(o.Status))),
		Category:            entities.ClassifyCategory(o.ProblemDescription),
		Total:               o.Total,
		ApprovedValue:       o.ApprovedValue(),
		HasPendingItems:     o.HasPendingItems(),
		CreatedAt:           o.CreatedAt,
		CompletedAt:         o.CompletedAt,
		EstimatedCompletion: o.EstimatedCompletion,
		Items:               make([]ServiceOrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		res.Items = append(res.Items, ServiceOrderItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Status:      string(it.Status),
			TotalPrice:  it.TotalPrice,
			Quantidade:  it.Quantidade,
		})
	}
	return res
}

func FromIntakeResult(r usecase.IntakeResult) IntakeResponse {
	return IntakeResponse{
		ClientID:  r.Client.ID,
		VehicleID: r.Vehicle.ID,
		Order:     FromServiceOrder(r.Order),
	}
}
