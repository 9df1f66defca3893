package update

import (
	"testing"
	"time"

	"github.com/phasecurve/gcal-imp/internal/model"
)

func formDate() time.Time {
	return time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
}

func typeString(f *EventForm, s string) {
	for _, r := range s {
		f.TypeRune(r)
	}
}

func TestTimeBufferRoundTrip(t *testing.T) {
	f := NewEventForm(formDate())
	f.ActiveField = FieldStartTime

	typeString(f, "1430")
	f.NextField()

	if f.StartHour != 14 || f.StartMinute != 30 {
		t.Fatalf("expected 14:30, got %02d:%02d", f.StartHour, f.StartMinute)
	}
	if f.TimeBuffer() != "14:30" {
		t.Fatalf("expected canonical buffer, got %q", f.TimeBuffer())
	}
}

func TestTimeBufferHourOnly(t *testing.T) {
	f := NewEventForm(formDate())
	f.ActiveField = FieldStartTime

	typeString(f, "7")
	f.NextField()

	if f.StartHour != 7 || f.StartMinute != 0 {
		t.Fatalf("expected 07:00, got %02d:%02d", f.StartHour, f.StartMinute)
	}
}

func TestTimeBufferClampsHourAndMinute(t *testing.T) {
	f := NewEventForm(formDate())
	f.ActiveField = FieldStartTime

	typeString(f, "2999")
	f.NextField()

	if f.StartHour != 23 || f.StartMinute != 59 {
		t.Fatalf("expected clamp to 23:59, got %02d:%02d", f.StartHour, f.StartMinute)
	}
}

func TestTimeBufferSilentIgnoreKeepsLastGood(t *testing.T) {
	f := NewEventForm(formDate())
	f.ActiveField = FieldStartTime

	typeString(f, "1430")
	f.NextField()
	f.ActiveField = FieldStartTime

	// Empty the buffer, then try to commit it.
	typeString(f, "1")
	f.Backspace()
	before := f.Rejections()
	f.NextField()

	if f.StartHour != 14 || f.StartMinute != 30 {
		t.Fatalf("prior value must survive a bad buffer, got %02d:%02d", f.StartHour, f.StartMinute)
	}
	if f.Rejections() != before+1 {
		t.Fatalf("expected one recorded rejection, got %d", f.Rejections()-before)
	}
}

func TestReplaceOnFirstKeystroke(t *testing.T) {
	ev := model.Event{
		ID:    "e1",
		Title: "Standup",
		Start: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 15, 15, 30, 0, 0, time.UTC),
	}
	f := FormForEvent(ev)
	if f.TimeBuffer() != "14:30" {
		t.Fatalf("expected pre-populated buffer, got %q", f.TimeBuffer())
	}

	f.ActiveField = FieldStartTime
	f.TypeRune('9')
	if f.TimeBuffer() != "9" {
		t.Fatalf("first keystroke must replace the buffer, got %q", f.TimeBuffer())
	}
	f.TypeRune('3')
	if f.TimeBuffer() != "93" {
		t.Fatalf("later keystrokes must append, got %q", f.TimeBuffer())
	}
}

func TestTimeBufferMaxLength(t *testing.T) {
	f := NewEventForm(formDate())
	f.ActiveField = FieldStartTime
	typeString(f, "12:345678")
	if f.TimeBuffer() != "12:34" {
		t.Fatalf("buffer must cap at 5 characters, got %q", f.TimeBuffer())
	}
}

func TestDurationClampTimed(t *testing.T) {
	f := NewEventForm(formDate())
	f.ActiveField = FieldDuration

	typeString(f, "99999")
	f.NextField()

	if f.DurationMinutes != 10080 {
		t.Fatalf("expected clamp to 10080 minutes, got %d", f.DurationMinutes)
	}
}

func TestDurationClampAllDay(t *testing.T) {
	f := NewAllDayForm(formDate(), 1)
	f.ActiveField = FieldDuration

	typeString(f, "99999")
	f.NextField()

	if f.DurationMinutes != 365*24*60 {
		t.Fatalf("expected clamp to 365 days, got %d minutes", f.DurationMinutes)
	}
	if f.DurationBuffer() != "365" {
		t.Fatalf("expected day-unit buffer, got %q", f.DurationBuffer())
	}
}

func TestDurationTabParsesAndAdvances(t *testing.T) {
	f := NewEventForm(formDate())
	f.ActiveField = FieldDuration

	typeString(f, "90")
	if f.DurationBuffer() != "90" {
		t.Fatalf("expected buffer %q, got %q", "90", f.DurationBuffer())
	}
	f.NextField()

	if f.DurationMinutes != 90 {
		t.Fatalf("expected 90 minutes, got %d", f.DurationMinutes)
	}
	if f.ActiveField != FieldLocation {
		t.Fatalf("expected Location active, got %s", f.ActiveField)
	}
}

func TestFieldCycleSkipsStartTimeWhenAllDay(t *testing.T) {
	f := NewAllDayForm(formDate(), 2)

	var seen []FormField
	for i := 0; i < 4; i++ {
		seen = append(seen, f.ActiveField)
		f.NextField()
	}
	want := []FormField{FieldTitle, FieldDuration, FieldLocation, FieldDescription}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle mismatch at %d: got %s want %s", i, seen[i], want[i])
		}
	}
	if f.ActiveField != FieldTitle {
		t.Fatalf("cycle must wrap to Title, got %s", f.ActiveField)
	}
}

func TestFieldCycleBackward(t *testing.T) {
	f := NewEventForm(formDate())
	f.PrevField()
	if f.ActiveField != FieldDescription {
		t.Fatalf("expected wrap to Description, got %s", f.ActiveField)
	}
}

func TestBuildEventTimed(t *testing.T) {
	f := NewEventForm(formDate())
	f.Title = "Standup"
	f.ActiveField = FieldStartTime
	typeString(f, "0915")
	f.ActiveField = FieldDuration
	typeString(f, "45")

	ev := f.BuildEvent()
	want := time.Date(2025, 1, 15, 9, 15, 0, 0, time.UTC)
	if !ev.Start.Equal(want) {
		t.Fatalf("unexpected start: %v", ev.Start)
	}
	if ev.DurationMinutes() != 45 {
		t.Fatalf("unexpected duration: %d", ev.DurationMinutes())
	}
	if ev.AllDay {
		t.Fatal("timed form must not build an all-day event")
	}
}

func TestBuildEventAllDay(t *testing.T) {
	f := NewAllDayForm(formDate(), 3)
	f.Title = "Conference"

	ev := f.BuildEvent()
	if !ev.AllDay {
		t.Fatal("expected all-day event")
	}
	if ev.DurationMinutes() != 3*24*60 {
		t.Fatalf("unexpected duration: %d", ev.DurationMinutes())
	}
	if !ev.Start.Equal(formDate()) {
		t.Fatalf("unexpected start: %v", ev.Start)
	}
}

func TestToggleAllDayConvertsDuration(t *testing.T) {
	f := NewEventForm(formDate())
	f.DurationMinutes = 3 * 24 * 60
	f.ActiveField = FieldStartTime

	f.ToggleAllDay()
	if !f.AllDay {
		t.Fatal("expected all-day after toggle")
	}
	if f.DurationBuffer() != "3" {
		t.Fatalf("expected 3-day buffer, got %q", f.DurationBuffer())
	}
	if f.ActiveField == FieldStartTime {
		t.Fatal("StartTime cannot stay active in all-day mode")
	}
}
