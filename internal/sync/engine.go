package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"

	"github.com/phasecurve/gcal-imp/internal/model"
	"github.com/phasecurve/gcal-imp/internal/storage"
)

// ErrOffline reports an action that needs the network while the engine
// runs in offline mode.
var ErrOffline = errors.New("sync: offline")

// API is the slice of the Calendar service the engine uses. Tests
// substitute a fake; production wires *calendar.Service through
// googleAPI.
type API interface {
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*calendar.Event, error)
	InsertEvent(ctx context.Context, calendarID string, ev *calendar.Event) (*calendar.Event, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, ev *calendar.Event) (*calendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	ListCalendars(ctx context.Context) ([]*calendar.CalendarListEntry, error)
}

type Options struct {
	CalendarID string
	PastDays   int
	FutureDays int
	Offline    bool
	Strategy   model.ResolutionStrategy
}

// Engine mediates between the Calendar API and the sqlite cache. Every
// logical action makes one attempt and reports one outcome; offline
// mode serves reads from the cache and queues writes for later replay.
type Engine struct {
	api  API
	repo storage.Repository
	opts Options
}

func NewEngine(api API, repo storage.Repository, opts Options) *Engine {
	if opts.CalendarID == "" {
		opts.CalendarID = model.DefaultCalendarID
	}
	if opts.Strategy == "" {
		opts.Strategy = model.ServerWins
	}
	return &Engine{api: api, repo: repo, opts: opts}
}

func (e *Engine) Offline() bool {
	return e.opts.Offline
}

// FetchWindow loads the events inside the configured window around a
// date. Online it pulls from the API, reconciles against dirty cached
// copies, and refreshes the cache; offline it serves the cache alone.
func (e *Engine) FetchWindow(ctx context.Context, around time.Time) ([]model.Event, error) {
	from := around.AddDate(0, 0, -e.opts.PastDays)
	to := around.AddDate(0, 0, e.opts.FutureDays)

	if e.opts.Offline {
		return e.cachedWindow(ctx, from, to)
	}

	// Replay anything queued while offline before reading the server,
	// so local mutations are not clobbered by the fetch.
	if _, err := e.FlushPending(ctx); err != nil {
		return nil, fmt.Errorf("flush pending: %w", err)
	}

	remote, err := e.api.ListEvents(ctx, e.opts.CalendarID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]model.Event, 0, len(remote))
	for _, raw := range remote {
		ev, convErr := fromAPI(e.opts.CalendarID, raw)
		if convErr != nil {
			return nil, convErr
		}
		ev, err = e.reconcile(ctx, ev)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// reconcile applies a freshly fetched remote event over the cache,
// resolving against any unsynced local edits first.
func (e *Engine) reconcile(ctx context.Context, remote model.Event) (model.Event, error) {
	cached, err := e.repo.GetEvent(ctx, remote.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// New on the server, nothing local to merge.
	case err != nil:
		return model.Event{}, fmt.Errorf("read cache for %s: %w", remote.ID, err)
	default:
		local, convErr := storage.FromRow(cached)
		if convErr != nil {
			return model.Event{}, convErr
		}
		if conflict, ok := model.DetectConflict(local, remote, cached.Dirty); ok {
			remote = model.ResolveConflict(conflict.Local, conflict.Remote, e.opts.Strategy)
		}
	}

	row, err := storage.ToRow(remote, false)
	if err != nil {
		return model.Event{}, err
	}
	if err := e.repo.UpsertEvent(ctx, row); err != nil {
		return model.Event{}, fmt.Errorf("cache event %s: %w", remote.ID, err)
	}
	return remote, nil
}

func (e *Engine) cachedWindow(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	rows, err := e.repo.ListEvents(ctx, storage.EventListFilter{
		CalendarID: e.opts.CalendarID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, fmt.Errorf("list cached events: %w", err)
	}
	out := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		ev, convErr := storage.FromRow(row)
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, ev)
	}
	return out, nil
}

// CreateEvent pushes a new event and returns it with the server id and
// html link filled in. Offline it assigns a local id, caches the event
// dirty, and queues the create for the next online sync.
func (e *Engine) CreateEvent(ctx context.Context, ev model.Event) (model.Event, error) {
	if ev.CalendarID == "" {
		ev.CalendarID = e.opts.CalendarID
	}
	ev.LastModified = time.Now().UTC()

	if e.opts.Offline {
		ev.ID = "local-" + uuid.NewString()
		if err := e.cacheDirty(ctx, ev, storage.OpCreate); err != nil {
			return model.Event{}, err
		}
		return ev, nil
	}

	payload := toAPI(ev)
	payload.Id = "" // the server assigns the id
	created, err := e.api.InsertEvent(ctx, ev.CalendarID, payload)
	if err != nil {
		return model.Event{}, fmt.Errorf("insert event: %w", err)
	}
	out, err := fromAPI(ev.CalendarID, created)
	if err != nil {
		return model.Event{}, err
	}
	row, err := storage.ToRow(out, false)
	if err != nil {
		return model.Event{}, err
	}
	if err := e.repo.UpsertEvent(ctx, row); err != nil {
		return model.Event{}, fmt.Errorf("cache created event: %w", err)
	}
	return out, nil
}

// UpdateEvent pushes edits to an existing event.
func (e *Engine) UpdateEvent(ctx context.Context, ev model.Event) (model.Event, error) {
	ev.LastModified = time.Now().UTC()

	if e.opts.Offline {
		if err := e.cacheDirty(ctx, ev, storage.OpUpdate); err != nil {
			return model.Event{}, err
		}
		return ev, nil
	}

	updated, err := e.api.UpdateEvent(ctx, ev.CalendarID, ev.ID, toAPI(ev))
	if err != nil {
		return model.Event{}, fmt.Errorf("update event: %w", err)
	}
	out, err := fromAPI(ev.CalendarID, updated)
	if err != nil {
		return model.Event{}, err
	}
	row, err := storage.ToRow(out, false)
	if err != nil {
		return model.Event{}, err
	}
	if err := e.repo.UpsertEvent(ctx, row); err != nil {
		return model.Event{}, fmt.Errorf("cache updated event: %w", err)
	}
	return out, nil
}

// DeleteEvent removes an event, from the server when online and from
// the queue-backed cache when offline.
func (e *Engine) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" {
		calendarID = e.opts.CalendarID
	}

	if e.opts.Offline {
		if err := e.repo.DeleteEvent(ctx, eventID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete cached event: %w", err)
		}
		if err := e.repo.EnqueueOp(ctx, storage.PendingOp{Operation: storage.OpDelete, EventID: eventID}); err != nil {
			return fmt.Errorf("queue delete: %w", err)
		}
		return nil
	}

	if err := e.api.DeleteEvent(ctx, calendarID, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if err := e.repo.DeleteEvent(ctx, eventID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete cached event: %w", err)
	}
	return nil
}

// Calendars returns the account's calendar list, primary first.
func (e *Engine) Calendars(ctx context.Context) ([]model.Calendar, error) {
	if e.opts.Offline {
		rows, err := e.repo.ListCalendars(ctx)
		if err != nil {
			return nil, fmt.Errorf("list cached calendars: %w", err)
		}
		out := make([]model.Calendar, 0, len(rows))
		for _, row := range rows {
			out = append(out, model.Calendar{
				ID:         row.ID,
				Name:       row.Name,
				Color:      row.Color,
				IsPrimary:  row.IsPrimary,
				AccessRole: model.AccessRole(row.AccessRole),
			})
		}
		return out, nil
	}

	entries, err := e.api.ListCalendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	out := make([]model.Calendar, 0, len(entries))
	for _, entry := range entries {
		cal := model.Calendar{
			ID:         entry.Id,
			Name:       entry.Summary,
			Color:      entry.BackgroundColor,
			IsPrimary:  entry.Primary,
			AccessRole: model.AccessRole(entry.AccessRole),
		}
		if err := e.repo.UpsertCalendar(ctx, storage.CalendarRow{
			ID:         cal.ID,
			Name:       cal.Name,
			Color:      cal.Color,
			IsPrimary:  cal.IsPrimary,
			AccessRole: string(cal.AccessRole),
		}); err != nil {
			return nil, fmt.Errorf("cache calendar %s: %w", cal.ID, err)
		}
		out = append(out, cal)
	}
	return out, nil
}

// FlushPending replays queued offline mutations in order. It stops at
// the first failure so the remaining queue survives for the next run.
func (e *Engine) FlushPending(ctx context.Context) (int, error) {
	if e.opts.Offline {
		return 0, ErrOffline
	}
	ops, err := e.repo.ListPendingOps(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending ops: %w", err)
	}

	flushed := 0
	for _, op := range ops {
		if err := e.replayOp(ctx, op); err != nil {
			return flushed, err
		}
		if err := e.repo.DeletePendingOp(ctx, op.ID); err != nil {
			return flushed, fmt.Errorf("dequeue op %d: %w", op.ID, err)
		}
		flushed++
	}
	return flushed, nil
}

func (e *Engine) replayOp(ctx context.Context, op storage.PendingOp) error {
	switch op.Operation {
	case storage.OpDelete:
		if err := e.api.DeleteEvent(ctx, e.opts.CalendarID, op.EventID); err != nil {
			return fmt.Errorf("replay delete %s: %w", op.EventID, err)
		}
		return nil
	case storage.OpCreate, storage.OpUpdate:
		row, err := e.repo.GetEvent(ctx, op.EventID)
		if errors.Is(err, storage.ErrNotFound) {
			// Created then deleted before a sync; nothing to push.
			return nil
		}
		if err != nil {
			return fmt.Errorf("load queued event %s: %w", op.EventID, err)
		}
		ev, err := storage.FromRow(row)
		if err != nil {
			return err
		}
		if op.Operation == storage.OpCreate {
			payload := toAPI(ev)
			payload.Id = ""
			created, err := e.api.InsertEvent(ctx, ev.CalendarID, payload)
			if err != nil {
				return fmt.Errorf("replay create %s: %w", op.EventID, err)
			}
			// The server assigned the permanent id; retire the local one.
			if err := e.repo.DeleteEvent(ctx, op.EventID); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			out, err := fromAPI(ev.CalendarID, created)
			if err != nil {
				return err
			}
			newRow, err := storage.ToRow(out, false)
			if err != nil {
				return err
			}
			return e.repo.UpsertEvent(ctx, newRow)
		}
		if _, err := e.api.UpdateEvent(ctx, ev.CalendarID, ev.ID, toAPI(ev)); err != nil {
			return fmt.Errorf("replay update %s: %w", op.EventID, err)
		}
		row.Dirty = false
		return e.repo.UpsertEvent(ctx, row)
	default:
		return fmt.Errorf("unknown queued operation %q", op.Operation)
	}
}

func (e *Engine) cacheDirty(ctx context.Context, ev model.Event, op string) error {
	row, err := storage.ToRow(ev, true)
	if err != nil {
		return err
	}
	if err := e.repo.UpsertEvent(ctx, row); err != nil {
		return fmt.Errorf("cache event: %w", err)
	}
	if err := e.repo.EnqueueOp(ctx, storage.PendingOp{Operation: op, EventID: ev.ID}); err != nil {
		return fmt.Errorf("queue %s: %w", op, err)
	}
	return nil
}
