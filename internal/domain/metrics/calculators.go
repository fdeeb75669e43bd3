// Package metrics holds the arithmetic behind the financial and productivity
// dashboards. Every function is total: degenerate inputs yield 0.
package metrics

// DailyAverageForRemainingDays is how much must be earned per remaining
// business day to reach the goal.
func DailyAverageForRemainingDays(goal, earned float64, remainingDays int) float64 {
	if remainingDays <= 0 {
		return 0
	}
	return (goal - earned) / float64(remainingDays)
}

// Projection extrapolates the current pace to the whole period.
func Projection(earned float64, daysWorked, totalDays int) float64 {
	if totalDays <= 0 || daysWorked <= 0 {
		return 0
	}
	return (earned / float64(daysWorked)) * float64(totalDays)
}

func PercentOfGoal(earned, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return (earned / goal) * 100
}

func AverageTicket(earned float64, delivered int) float64 {
	if delivered <= 0 {
		return 0
	}
	return earned / float64(delivered)
}
