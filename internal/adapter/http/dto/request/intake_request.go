package request

import (
	"time"

	"oficina/internal/usecase"
)

type IntakeClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type IntakeVehicleRequest struct {
	Plate string `json:"plate" binding:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type IntakeItemRequest struct {
	Description string   `json:"description" binding:"required"`
	TotalPrice  *float64 `json:"total_price"`
	Quantidade  int      `json:"quantidade"`
}

// IntakeRequest is the counter quick-create form.
type IntakeRequest struct {
	Client              IntakeClientRequest  `json:"client" binding:"required"`
	Vehicle             IntakeVehicleRequest `json:"vehicle" binding:"required"`
	ProblemDescription  string               `json:"problem_description"`
	MechanicID          string               `json:"mechanic_id"`
	Total               *float64             `json:"total"`
	EstimatedCompletion *time.Time           `json:"estimated_completion"`
	Items               []IntakeItemRequest  `json:"items"`
}

func (r IntakeRequest) ToInput() usecase.IntakeInput {
	in := usecase.IntakeInput{
		ClientName:          r.Client.Name,
		ClientPhone:         r.Client.Phone,
		ClientEmail:         r.Client.Email,
		Plate:               r.Vehicle.Plate,
		Brand:               r.Vehicle.Brand,
		Model:               r.Vehicle.Model,
		Year:                r.Vehicle.Year,
		ProblemDescription:  r.ProblemDescription,
		MechanicID:          r.MechanicID,
		Total:               r.Total,
		EstimatedCompletion: r.EstimatedCompletion,
	}
	for _, it := range r.Items {
		qty := it.Quantidade
		if qty <= 0 {
			qty = 1
		}
		in.Items = append(in.Items, usecase.IntakeItem{
			Description: it.Description,
			TotalPrice:  it.TotalPrice,
			Quantidade:  qty,
		})
	}
	return in
}
