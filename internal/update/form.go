package update

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phasecurve/gcal-imp/internal/model"
)

type FormField int

const (
	FieldTitle FormField = iota
	FieldStartTime
	FieldDuration
	FieldLocation
	FieldDescription
)

func (f FormField) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldStartTime:
		return "Start time"
	case FieldDuration:
		return "Duration"
	case FieldLocation:
		return "Location"
	case FieldDescription:
		return "Description"
	default:
		return "?"
	}
}

const (
	maxTimedMinutes = 10080
	maxAllDayDays   = 365
	numericBufMax   = 5
)

// EventForm is the transient edit buffer for one event. Time and
// duration input go through raw keystroke buffers that replace their
// contents on the first keystroke after a field becomes active; the
// buffers are parsed only on Tab, Shift-Tab, or Enter.
type EventForm struct {
	EventID    string
	CalendarID string

	Title       string
	Location    string
	Description string

	Date            time.Time
	StartHour       int
	StartMinute     int
	DurationMinutes int
	AllDay          bool

	ActiveField FormField

	timeBuffer      string
	timeTouched     bool
	durationBuffer  string
	durationTouched bool

	// Count of buffer contents dropped by the last-known-good policy.
	rejected int
}

func NewEventForm(date time.Time) *EventForm {
	f := &EventForm{
		Date:            dateOf(date),
		StartHour:       9,
		StartMinute:     0,
		DurationMinutes: 60,
		ActiveField:     FieldTitle,
	}
	f.resetBuffers()
	return f
}

// NewAllDayForm builds the multi-day variant committed from a Visual
// date range. days counts calendar days inclusive of both endpoints.
func NewAllDayForm(start time.Time, days int) *EventForm {
	if days < 1 {
		days = 1
	}
	f := &EventForm{
		Date:            dateOf(start),
		AllDay:          true,
		DurationMinutes: days * 24 * 60,
		ActiveField:     FieldTitle,
	}
	f.resetBuffers()
	return f
}

// FormForEvent pre-populates the edit variant. EventID presence is
// what distinguishes editing from creating.
func FormForEvent(ev model.Event) *EventForm {
	f := &EventForm{
		EventID:         ev.ID,
		CalendarID:      ev.CalendarID,
		Title:           ev.Title,
		Location:        ev.Location,
		Description:     ev.Description,
		Date:            ev.StartDate(),
		StartHour:       ev.Start.UTC().Hour(),
		StartMinute:     ev.Start.UTC().Minute(),
		DurationMinutes: ev.DurationMinutes(),
		AllDay:          ev.AllDay,
		ActiveField:     FieldTitle,
	}
	f.resetBuffers()
	return f
}

func (f *EventForm) resetBuffers() {
	f.timeBuffer = fmt.Sprintf("%02d:%02d", f.StartHour, f.StartMinute)
	f.timeTouched = false
	if f.AllDay {
		f.durationBuffer = strconv.Itoa(f.DurationMinutes / (24 * 60))
	} else {
		f.durationBuffer = strconv.Itoa(f.DurationMinutes)
	}
	f.durationTouched = false
}

func (f *EventForm) TimeBuffer() string     { return f.timeBuffer }
func (f *EventForm) DurationBuffer() string { return f.durationBuffer }

// Rejections counts silently ignored buffer parses.
func (f *EventForm) Rejections() int { return f.rejected }

// fields returns the active cycle; StartTime is excluded while the
// event is all-day.
func (f *EventForm) fields() []FormField {
	if f.AllDay {
		return []FormField{FieldTitle, FieldDuration, FieldLocation, FieldDescription}
	}
	return []FormField{FieldTitle, FieldStartTime, FieldDuration, FieldLocation, FieldDescription}
}

func (f *EventForm) NextField() {
	f.commitBuffers()
	f.shiftField(1)
}

func (f *EventForm) PrevField() {
	f.commitBuffers()
	f.shiftField(-1)
}

func (f *EventForm) shiftField(delta int) {
	cycle := f.fields()
	at := 0
	for i, field := range cycle {
		if field == f.ActiveField {
			at = i
			break
		}
	}
	f.ActiveField = cycle[cycleIndex(at, delta, len(cycle))]
}

// ToggleAllDay flips the all-day flag and snaps the duration into the
// new unit's range.
func (f *EventForm) ToggleAllDay() {
	f.AllDay = !f.AllDay
	if f.AllDay {
		days := f.DurationMinutes / (24 * 60)
		f.DurationMinutes = clampInt(days, 1, maxAllDayDays) * 24 * 60
		if f.ActiveField == FieldStartTime {
			f.ActiveField = FieldDuration
		}
	} else {
		f.DurationMinutes = clampInt(f.DurationMinutes, 1, maxTimedMinutes)
	}
	f.resetBuffers()
}

// TypeRune feeds one printable character into the active field.
func (f *EventForm) TypeRune(r rune) {
	switch f.ActiveField {
	case FieldTitle:
		f.Title += string(r)
	case FieldLocation:
		f.Location += string(r)
	case FieldDescription:
		f.Description += string(r)
	case FieldStartTime:
		if (r < '0' || r > '9') && r != ':' {
			return
		}
		if !f.timeTouched {
			f.timeBuffer = ""
			f.timeTouched = true
		}
		if len(f.timeBuffer) < numericBufMax {
			f.timeBuffer += string(r)
		}
	case FieldDuration:
		if r < '0' || r > '9' {
			return
		}
		if !f.durationTouched {
			f.durationBuffer = ""
			f.durationTouched = true
		}
		if len(f.durationBuffer) < numericBufMax {
			f.durationBuffer += string(r)
		}
	}
}

// Backspace removes the last character of the active field's buffer.
func (f *EventForm) Backspace() {
	trim := func(s string) string {
		if s == "" {
			return s
		}
		runes := []rune(s)
		return string(runes[:len(runes)-1])
	}
	switch f.ActiveField {
	case FieldTitle:
		f.Title = trim(f.Title)
	case FieldLocation:
		f.Location = trim(f.Location)
	case FieldDescription:
		f.Description = trim(f.Description)
	case FieldStartTime:
		f.timeTouched = true
		f.timeBuffer = trim(f.timeBuffer)
	case FieldDuration:
		f.durationTouched = true
		f.durationBuffer = trim(f.durationBuffer)
	}
}

// commitBuffers parses both numeric buffers, keeping the previous
// valid values when a buffer does not parse.
func (f *EventForm) commitBuffers() {
	f.parseTimeBuffer()
	f.parseDurationBuffer()
}

// parseTimeBuffer interprets the raw time buffer: 3-4 digits as
// HMM/HHMM, 1-2 digits as a bare hour. Anything else leaves the prior
// time in place. On success the buffer is rewritten in canonical
// HH:MM form.
func (f *EventForm) parseTimeBuffer() {
	digits := strings.ReplaceAll(f.timeBuffer, ":", "")
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		f.reject()
		return
	}
	switch len(digits) {
	case 3, 4:
		f.StartHour = clampInt(n/100, 0, 23)
		f.StartMinute = clampInt(n%100, 0, 59)
	case 1, 2:
		f.StartHour = clampInt(n, 0, 23)
		f.StartMinute = 0
	default:
		f.reject()
		return
	}
	f.timeBuffer = fmt.Sprintf("%02d:%02d", f.StartHour, f.StartMinute)
	f.timeTouched = false
}

// parseDurationBuffer interprets the duration buffer as whole days for
// all-day events (clamped to [1,365]) or whole minutes otherwise
// (clamped to [1,10080]).
func (f *EventForm) parseDurationBuffer() {
	n, err := strconv.Atoi(f.durationBuffer)
	if err != nil {
		f.reject()
		return
	}
	if f.AllDay {
		days := clampInt(n, 1, maxAllDayDays)
		f.DurationMinutes = days * 24 * 60
		f.durationBuffer = strconv.Itoa(days)
	} else {
		f.DurationMinutes = clampInt(n, 1, maxTimedMinutes)
		f.durationBuffer = strconv.Itoa(f.DurationMinutes)
	}
	f.durationTouched = false
}

func (f *EventForm) reject() {
	f.rejected++
}

// BuildEvent finalizes the form into an event ready for the sync
// collaborator.
func (f *EventForm) BuildEvent() model.Event {
	f.commitBuffers()

	ev := model.Event{
		ID:          f.EventID,
		CalendarID:  f.CalendarID,
		Title:       f.Title,
		Location:    f.Location,
		Description: f.Description,
		AllDay:      f.AllDay,
		Status:      model.StatusConfirmed,
	}
	if f.AllDay {
		ev.Start = f.Date
		ev.End = f.Date.Add(time.Duration(f.DurationMinutes) * time.Minute)
	} else {
		y, m, d := f.Date.Date()
		ev.Start = time.Date(y, m, d, f.StartHour, f.StartMinute, 0, 0, time.UTC)
		ev.End = ev.Start.Add(time.Duration(f.DurationMinutes) * time.Minute)
	}
	return ev
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
