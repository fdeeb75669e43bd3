package metrics

import "testing"

func TestPercentOfGoal(t *testing.T) {
	if got := PercentOfGoal(225000, 300000); got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
	for _, earned := range []float64{0, 10, -5, 1e9} {
		if got := PercentOfGoal(earned, 0); got != 0 {
			t.Fatalf("expected 0 for zero goal, got %v", got)
		}
	}
	if got := PercentOfGoal(10, -1); got != 0 {
		t.Fatalf("expected 0 for negative goal, got %v", got)
	}
}

func TestDailyAverageForRemainingDays(t *testing.T) {
	if got := DailyAverageForRemainingDays(300000, 150000, 10); got != 15000 {
		t.Fatalf("expected 15000, got %v", got)
	}
	if got := DailyAverageForRemainingDays(300000, 150000, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := DailyAverageForRemainingDays(300000, 150000, -3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestProjection(t *testing.T) {
	if got := Projection(50000, 5, 22); got != 220000 {
		t.Fatalf("expected 220000, got %v", got)
	}
	if got := Projection(50000, 0, 22); got != 0 {
		t.Fatalf("expected 0 with no days worked, got %v", got)
	}
	if got := Projection(50000, 5, 0); got != 0 {
		t.Fatalf("expected 0 with empty period, got %v", got)
	}
}

func TestAverageTicket(t *testing.T) {
	if got := AverageTicket(9000, 3); got != 3000 {
		t.Fatalf("expected 3000, got %v", got)
	}
	if got := AverageTicket(9000, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
