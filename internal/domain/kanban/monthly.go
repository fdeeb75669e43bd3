package kanban

import (
	"time"

	"oficina/internal/domain/entities"
)

// MonthBounds returns the first and last instant of the calendar month of
// now in loc.
func MonthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// InMonth reports whether t lies in [start, end] of the month of now.
func InMonth(t, now time.Time, loc *time.Location) bool {
	start, end := MonthBounds(now, loc)
	return !t.Before(start) && !t.After(end)
}

// MonthlyDelivered sums the approved value of orders delivered during the
// current calendar month of the business timezone.
func MonthlyDelivered(orders []entities.ServiceOrder, now time.Time, loc *time.Location) float64 {
	sum := 0.0
	for _, o := range DeliveredInMonth(orders, now, loc) {
		sum += o.ApprovedValue()
	}
	return sum
}

// DeliveredInMonth filters the orders delivered in the month of now.
func DeliveredInMonth(orders []entities.ServiceOrder, now time.Time, loc *time.Location) []entities.ServiceOrder {
	var out []entities.ServiceOrder
	for _, o := range orders {
		if entities.NormalizeStatus(string(o.Status)) != entities.OrderStatusEntregue || o.CompletedAt == nil {
			continue
		}
		if InMonth(*o.CompletedAt, now, loc) {
			out = append(out, o)
		}
	}
	return out
}
