package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) UpsertEvent(ctx context.Context, in EventRow) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, calendar_id, title, description, location, start_at, end_at, all_day,
			attendees, reminders, status, last_modified, html_link, dirty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			calendar_id = excluded.calendar_id,
			title = excluded.title,
			description = excluded.description,
			location = excluded.location,
			start_at = excluded.start_at,
			end_at = excluded.end_at,
			all_day = excluded.all_day,
			attendees = excluded.attendees,
			reminders = excluded.reminders,
			status = excluded.status,
			last_modified = excluded.last_modified,
			html_link = excluded.html_link,
			dirty = excluded.dirty`,
		in.ID, in.CalendarID, in.Title, in.Description, in.Location,
		formatTime(in.StartAt), formatTime(in.EndAt), boolToInt(in.AllDay),
		in.Attendees, in.Reminders, in.Status, formatTime(in.LastModified),
		in.HTMLLink, boolToInt(in.Dirty),
	)
	return err
}

func (r *SQLiteRepository) GetEvent(ctx context.Context, id string) (EventRow, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, calendar_id, title, description, location, start_at, end_at, all_day,
			attendees, reminders, status, last_modified, html_link, dirty
		FROM events WHERE id = ?`, id)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EventRow{}, ErrNotFound
		}
		return EventRow{}, err
	}
	return ev, nil
}

func (r *SQLiteRepository) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListEvents(ctx context.Context, filter EventListFilter) ([]EventRow, error) {
	query := `
		SELECT id, calendar_id, title, description, location, start_at, end_at, all_day,
			attendees, reminders, status, last_modified, html_link, dirty
		FROM events`
	var (
		clauses []string
		args    []any
	)
	if filter.CalendarID != "" {
		clauses = append(clauses, "calendar_id = ?")
		args = append(args, filter.CalendarID)
	}
	if filter.From != nil {
		clauses = append(clauses, "start_at >= ?")
		args = append(args, formatTime(*filter.From))
	}
	if filter.To != nil {
		clauses = append(clauses, "start_at < ?")
		args = append(args, formatTime(*filter.To))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY start_at ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		ev, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpsertCalendar(ctx context.Context, in CalendarRow) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendars (id, name, color, is_primary, access_role)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			is_primary = excluded.is_primary,
			access_role = excluded.access_role`,
		in.ID, in.Name, in.Color, boolToInt(in.IsPrimary), in.AccessRole,
	)
	return err
}

func (r *SQLiteRepository) ListCalendars(ctx context.Context) ([]CalendarRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, color, is_primary, access_role
		FROM calendars ORDER BY is_primary DESC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CalendarRow
	for rows.Next() {
		var (
			cal     CalendarRow
			primary int
		)
		if err := rows.Scan(&cal.ID, &cal.Name, &cal.Color, &primary, &cal.AccessRole); err != nil {
			return nil, err
		}
		cal.IsPrimary = primary != 0
		out = append(out, cal)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) EnqueueOp(ctx context.Context, op PendingOp) error {
	created := op.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_queue (operation, event_id, payload, created_at)
		VALUES (?, ?, ?, ?)`,
		op.Operation, op.EventID, op.Payload, formatTime(created),
	)
	return err
}

func (r *SQLiteRepository) ListPendingOps(ctx context.Context) ([]PendingOp, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, operation, event_id, payload, created_at
		FROM sync_queue ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PendingOp
	for rows.Next() {
		var (
			op      PendingOp
			created string
		)
		if err := rows.Scan(&op.ID, &op.Operation, &op.EventID, &op.Payload, &created); err != nil {
			return nil, err
		}
		op.CreatedAt, err = parseTime(created)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) DeletePendingOp(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (EventRow, error) {
	var (
		ev               EventRow
		startAt, endAt   string
		lastModified     string
		allDayInt, dirty int
	)
	err := row.Scan(&ev.ID, &ev.CalendarID, &ev.Title, &ev.Description, &ev.Location,
		&startAt, &endAt, &allDayInt, &ev.Attendees, &ev.Reminders, &ev.Status,
		&lastModified, &ev.HTMLLink, &dirty)
	if err != nil {
		return EventRow{}, err
	}
	if ev.StartAt, err = parseTime(startAt); err != nil {
		return EventRow{}, err
	}
	if ev.EndAt, err = parseTime(endAt); err != nil {
		return EventRow{}, err
	}
	if ev.LastModified, err = parseTime(lastModified); err != nil {
		return EventRow{}, err
	}
	ev.AllDay = allDayInt != 0
	ev.Dirty = dirty != 0
	return ev, nil
}

func checkRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
