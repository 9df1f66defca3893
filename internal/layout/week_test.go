package layout

import (
	"testing"
	"time"
)

func TestWeekLayoutHasSevenDays(t *testing.T) {
	w := BuildWeek(date(2025, time.January, 15), date(2025, time.January, 15), indexOf())
	if len(w.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(w.Days))
	}
}

func TestWeekStartsMondayEndsSunday(t *testing.T) {
	w := BuildWeek(date(2025, time.January, 15), date(2025, time.January, 15), indexOf())
	if !w.WeekStart.Equal(date(2025, time.January, 13)) {
		t.Fatalf("expected week start 2025-01-13, got %v", w.WeekStart)
	}
	if w.Days[0].Date.Weekday() != time.Monday {
		t.Fatalf("expected Monday first, got %v", w.Days[0].Date.Weekday())
	}
	if w.Days[6].Date.Weekday() != time.Sunday {
		t.Fatalf("expected Sunday last, got %v", w.Days[6].Date.Weekday())
	}
}

func TestWeekSelectedDayIsMarked(t *testing.T) {
	w := BuildWeek(date(2025, time.January, 15), date(2025, time.January, 1), indexOf())
	var selected []DayColumn
	for _, day := range w.Days {
		if day.IsSelected {
			selected = append(selected, day)
		}
	}
	if len(selected) != 1 || !selected[0].Date.Equal(date(2025, time.January, 15)) {
		t.Fatalf("unexpected selection: %+v", selected)
	}
}

func TestWeekOnlyOccupiedHoursMaterialized(t *testing.T) {
	wednesday := date(2025, time.January, 15)
	idx := indexOf(eventOn("e1", wednesday, 9), eventOn("e2", wednesday, 14))
	w := BuildWeek(wednesday, wednesday, idx)

	slots := w.Days[2].Slots
	if len(slots) != 2 {
		t.Fatalf("expected 2 occupied slots, got %d", len(slots))
	}
	if slots[0].Hour != 9 || slots[1].Hour != 14 {
		t.Fatalf("unexpected slot hours: %d, %d", slots[0].Hour, slots[1].Hour)
	}
}

func TestWeekMultipleEventsShareSlot(t *testing.T) {
	wednesday := date(2025, time.January, 15)
	idx := indexOf(eventOn("e1", wednesday, 10), eventOn("e2", wednesday, 10))
	w := BuildWeek(wednesday, wednesday, idx)

	slots := w.Days[2].Slots
	if len(slots) != 1 {
		t.Fatalf("expected one slot, got %d", len(slots))
	}
	if len(slots[0].Events) != 2 {
		t.Fatalf("expected 2 events in hour 10, got %d", len(slots[0].Events))
	}
}

func TestWeekEventBlockCarriesDuration(t *testing.T) {
	wednesday := date(2025, time.January, 15)
	ev := eventOn("e1", wednesday, 10)
	ev.End = ev.Start.Add(2 * time.Hour)
	w := BuildWeek(wednesday, wednesday, indexOf(ev))

	block := w.Days[2].Slots[0].Events[0]
	if block.DurationMinutes != 120 {
		t.Fatalf("expected 120 minutes, got %d", block.DurationMinutes)
	}
	if block.StartHour != 10 || block.StartMinute != 0 {
		t.Fatalf("unexpected start: %d:%d", block.StartHour, block.StartMinute)
	}
}
