package metrics

import (
	"testing"
	"time"
)

func TestBusinessDays(t *testing.T) {
	// October 2026: starts on a Thursday, 22 weekdays.
	now := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC) // Friday
	if got := BusinessDaysInMonth(now, time.UTC); got != 22 {
		t.Fatalf("expected 22 business days, got %d", got)
	}
	if got := BusinessDaysElapsed(now, time.UTC); got != 12 {
		t.Fatalf("expected 12 elapsed, got %d", got)
	}
	if got := RemainingBusinessDays(now, time.UTC); got != 10 {
		t.Fatalf("expected 10 remaining, got %d", got)
	}

	weekend := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) // Saturday
	if got := BusinessDaysElapsed(weekend, time.UTC); got != 12 {
		t.Fatalf("saturday should not count, got %d", got)
	}

	lastDay := time.Date(2026, 10, 30, 12, 0, 0, 0, time.UTC) // Friday
	if got := RemainingBusinessDays(lastDay, time.UTC); got != 0 {
		t.Fatalf("expected 0 remaining, got %d", got)
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC) // 16th 22:00 local
	start := StartOfDay(now, loc)
	if !start.Equal(time.Date(2026, 10, 16, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected start %v", start)
	}
	end := EndOfDay(now, loc)
	if !end.Equal(time.Date(2026, 10, 16, 23, 59, 59, 999999999, loc)) {
		t.Fatalf("unexpected end %v", end)
	}
}
