package model

import "time"

// DefaultCalendarID is the Google Calendar alias for the account's
// primary calendar.
const DefaultCalendarID = "primary"

type EventStatus string

const (
	StatusConfirmed EventStatus = "confirmed"
	StatusTentative EventStatus = "tentative"
	StatusCancelled EventStatus = "cancelled"
)

type ReminderMethod string

const (
	ReminderEmail ReminderMethod = "email"
	ReminderPopup ReminderMethod = "popup"
)

type Reminder struct {
	Method        ReminderMethod
	MinutesBefore int
}

// Event is one calendar entry. Start and End are UTC instants; for
// all-day events Start is midnight of the first day and End is
// midnight after the last day.
type Event struct {
	ID           string
	CalendarID   string
	Title        string
	Description  string
	Location     string
	Start        time.Time
	End          time.Time
	AllDay       bool
	Attendees    []string
	Reminders    []Reminder
	Status       EventStatus
	LastModified time.Time
	HTMLLink     string
}

func (e Event) DurationMinutes() int {
	return int(e.End.Sub(e.Start).Minutes())
}

func (e Event) DurationDays() int {
	return int(e.End.Sub(e.Start).Hours() / 24)
}

// Overlaps reports whether two events share any instant. Events that
// merely touch (one ends exactly when the other starts) do not overlap.
func (e Event) Overlaps(other Event) bool {
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}

// StartDate returns the event's start day truncated to midnight UTC,
// the date key used by the layout engine.
func (e Event) StartDate() time.Time {
	y, m, d := e.Start.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type AccessRole string

const (
	RoleOwner  AccessRole = "owner"
	RoleWriter AccessRole = "writer"
	RoleReader AccessRole = "reader"
)

type Calendar struct {
	ID         string
	Name       string
	Color      string
	IsPrimary  bool
	AccessRole AccessRole
}
