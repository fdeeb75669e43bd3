package metrics

import (
	"time"

	"oficina/internal/domain/entities"
)

// VehicleBuckets splits the active orders by schedule situation.
type VehicleBuckets struct {
	Stuck    []entities.ServiceOrder `json:"stuck"`
	Late     []entities.ServiceOrder `json:"late"`
	DueToday []entities.ServiceOrder `json:"due_today"`
}

// ClassifyVehicles is evaluated once against now; it does not track time.
func ClassifyVehicles(orders []entities.ServiceOrder, now time.Time, loc *time.Location) VehicleBuckets {
	start := StartOfDay(now, loc)
	end := EndOfDay(now, loc)

	b := VehicleBuckets{
		Stuck:    []entities.ServiceOrder{},
		Late:     []entities.ServiceOrder{},
		DueToday: []entities.ServiceOrder{},
	}
	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		b.Stuck = append(b.Stuck, o)

		if o.EstimatedCompletion == nil {
			continue
		}
		eta := *o.EstimatedCompletion
		switch {
		case eta.Before(start):
			b.Late = append(b.Late, o)
		case !eta.After(end):
			b.DueToday = append(b.DueToday, o)
		}
	}
	return b
}
