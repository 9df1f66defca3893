package storage

import "time"

// EventRow is the cached copy of one remote event. Attendees and
// reminders are stored as JSON blobs; the queryable fields get their
// own columns.
type EventRow struct {
	ID           string
	CalendarID   string
	Title        string
	Description  string
	Location     string
	StartAt      time.Time
	EndAt        time.Time
	AllDay       bool
	Attendees    string
	Reminders    string
	Status       string
	LastModified time.Time
	HTMLLink     string
	Dirty        bool
}

type CalendarRow struct {
	ID         string
	Name       string
	Color      string
	IsPrimary  bool
	AccessRole string
}

// PendingOp is a queued mutation taken while offline, replayed on the
// next successful sync.
type PendingOp struct {
	ID        int64
	Operation string
	EventID   string
	Payload   string
	CreatedAt time.Time
}

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type EventListFilter struct {
	CalendarID string
	From       *time.Time
	To         *time.Time
	Limit      int
}
