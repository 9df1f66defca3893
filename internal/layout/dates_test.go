package layout

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeekReturnsMonday(t *testing.T) {
	wednesday := date(2025, time.January, 15)
	monday := StartOfWeek(wednesday)
	if !monday.Equal(date(2025, time.January, 13)) {
		t.Fatalf("expected 2025-01-13, got %v", monday)
	}
	if monday.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %v", monday.Weekday())
	}
}

func TestStartOfWeekForMondayIsIdentity(t *testing.T) {
	monday := date(2025, time.January, 13)
	if got := StartOfWeek(monday); !got.Equal(monday) {
		t.Fatalf("expected %v, got %v", monday, got)
	}
}

func TestStartOfWeekForSundayIsPreviousMonday(t *testing.T) {
	sunday := date(2025, time.January, 19)
	if got := StartOfWeek(sunday); !got.Equal(date(2025, time.January, 13)) {
		t.Fatalf("expected 2025-01-13, got %v", got)
	}
}

func TestAddMonthsClampsDayOfMonth(t *testing.T) {
	jan31 := date(2025, time.January, 31)
	if got := AddMonths(jan31, 1); !got.Equal(date(2025, time.February, 28)) {
		t.Fatalf("expected 2025-02-28, got %v", got)
	}
	if got := AddMonths(date(2024, time.January, 31), 1); !got.Equal(date(2024, time.February, 29)) {
		t.Fatalf("expected leap-day clamp, got %v", got)
	}
}

func TestAddMonthsWrapsYearBackward(t *testing.T) {
	jan15 := date(2025, time.January, 15)
	if got := AddMonths(jan15, -1); !got.Equal(date(2024, time.December, 15)) {
		t.Fatalf("expected 2024-12-15, got %v", got)
	}
}

func TestAddMonthsForward(t *testing.T) {
	if got := AddMonths(date(2025, time.December, 15), 1); !got.Equal(date(2026, time.January, 15)) {
		t.Fatalf("expected 2026-01-15, got %v", got)
	}
}

func TestLastOfMonth(t *testing.T) {
	if got := LastOfMonth(date(2025, time.January, 15)); got.Day() != 31 {
		t.Fatalf("expected day 31, got %d", got.Day())
	}
	if got := LastOfMonth(date(2024, time.February, 1)); got.Day() != 29 {
		t.Fatalf("expected day 29, got %d", got.Day())
	}
}

func TestMinMaxDateOrderIndependent(t *testing.T) {
	a := date(2025, time.January, 10)
	b := date(2025, time.January, 12)
	if !MinDate(a, b).Equal(a) || !MinDate(b, a).Equal(a) {
		t.Fatal("MinDate should return the earlier date regardless of order")
	}
	if !MaxDate(a, b).Equal(b) || !MaxDate(b, a).Equal(b) {
		t.Fatal("MaxDate should return the later date regardless of order")
	}
}
