package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the offline cache consumed by the sync engine. The
// interaction core never talks to it directly; it only sees events
// already loaded into the session.
type Repository interface {
	UpsertEvent(ctx context.Context, in EventRow) error
	GetEvent(ctx context.Context, id string) (EventRow, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, filter EventListFilter) ([]EventRow, error)

	UpsertCalendar(ctx context.Context, in CalendarRow) error
	ListCalendars(ctx context.Context) ([]CalendarRow, error)

	EnqueueOp(ctx context.Context, op PendingOp) error
	ListPendingOps(ctx context.Context) ([]PendingOp, error)
	DeletePendingOp(ctx context.Context, id int64) error
}
