package entities

import (
	"strings"
	"time"
)

// OrderStatus is the persisted lifecycle status of a service order (OS).
//
// Domain notes:
//   - Staff move orders between statuses from the kanban board.
//   - entregue is the only terminal status; reaching it stamps CompletedAt.
type OrderStatus string

const (
	OrderStatusAgendamentoConfirmado OrderStatus = "agendamento_confirmado"
	OrderStatusDiagnostico           OrderStatus = "diagnostico"
	OrderStatusOrcamento             OrderStatus = "orcamento"
	OrderStatusAguardandoAprovacao   OrderStatus = "aguardando_aprovacao"
	OrderStatusAprovado              OrderStatus = "aprovado"
	OrderStatusAguardandoPeca        OrderStatus = "aguardando_peca"
	OrderStatusEmExecucao            OrderStatus = "em_execucao"
	OrderStatusEmTeste               OrderStatus = "em_teste"
	OrderStatusPronto                OrderStatus = "pronto"
	OrderStatusEntregue              OrderStatus = "entregue"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusEntregue
}

// ItemStatus is the approval state of a line item of the estimate.
type ItemStatus string

const (
	ItemStatusPendente ItemStatus = "pendente"
	ItemStatusAprovado ItemStatus = "aprovado"
	ItemStatusRecusado ItemStatus = "recusado"
)

// IsApproved compares case-insensitively; older rows were saved as "Aprovado".
func (s ItemStatus) IsApproved() bool {
	return strings.ToLower(string(s)) == string(ItemStatusAprovado)
}

// ServiceOrderItem is one line (service or part) of a service order.
type ServiceOrderItem struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	Description string     `json:"description"`
	Status      ItemStatus `json:"status"`
	TotalPrice  *float64   `json:"total_price"`
	Quantidade  int        `json:"quantidade"`
}

// ServiceOrder is the ordem de serviço handled by the shop.
//
// Status is kept as the raw persisted string: rows written by older clients
// may carry values outside the canonical enum and must still be displayed.
type ServiceOrder struct {
	ID                  string             `json:"id"`
	OrderNumber         int64              `json:"order_number"`
	ClientID            string             `json:"client_id"`
	VehicleID           string             `json:"vehicle_id"`
	MechanicID          string             `json:"mechanic_id,omitempty"`
	Status              OrderStatus        `json:"status"`
	Total               *float64           `json:"total"`
	ProblemDescription  *string            `json:"problem_description,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	EstimatedCompletion *time.Time         `json:"estimated_completion,omitempty"`
	Items               []ServiceOrderItem `json:"items,omitempty"`

	Client  *Client  `json:"client,omitempty"`
	Vehicle *Vehicle `json:"vehicle,omitempty"`
}

// ApprovedValue is the billable value of the order.
//
// Items are summed by total_price only; quantidade is not applied.
func ApprovedValue(o ServiceOrder) float64 {
	sum := 0.0
	approved := 0
	for _, it := range o.Items {
		if !it.Status.IsApproved() {
			continue
		}
		approved++
		if it.TotalPrice != nil {
			sum += *it.TotalPrice
		}
	}
	if approved > 0 {
		return sum
	}
	if o.Total != nil {
		return *o.Total
	}
	return 0
}

func (o ServiceOrder) ApprovedValue() float64 {
	return ApprovedValue(o)
}

// HasPendingItems reports whether any item still awaits the customer.
func (o ServiceOrder) HasPendingItems() bool {
	for _, it := range o.Items {
		if strings.ToLower(string(it.Status)) == string(ItemStatusPendente) {
			return true
		}
	}
	return false
}

// IsActive reports whether the vehicle is still in the shop.
func (o ServiceOrder) IsActive() bool {
	return NormalizeStatus(string(o.Status)) != OrderStatusEntregue
}
