package storage

import (
	"encoding/json"
	"fmt"

	"github.com/phasecurve/gcal-imp/internal/model"
)

// ToRow flattens a domain event into its cached representation.
func ToRow(ev model.Event, dirty bool) (EventRow, error) {
	attendees, err := json.Marshal(ev.Attendees)
	if err != nil {
		return EventRow{}, fmt.Errorf("marshal attendees: %w", err)
	}
	reminders, err := json.Marshal(ev.Reminders)
	if err != nil {
		return EventRow{}, fmt.Errorf("marshal reminders: %w", err)
	}
	return EventRow{
		ID:           ev.ID,
		CalendarID:   ev.CalendarID,
		Title:        ev.Title,
		Description:  ev.Description,
		Location:     ev.Location,
		StartAt:      ev.Start,
		EndAt:        ev.End,
		AllDay:       ev.AllDay,
		Attendees:    string(attendees),
		Reminders:    string(reminders),
		Status:       string(ev.Status),
		LastModified: ev.LastModified,
		HTMLLink:     ev.HTMLLink,
		Dirty:        dirty,
	}, nil
}

// FromRow restores a domain event from its cached representation.
func FromRow(row EventRow) (model.Event, error) {
	ev := model.Event{
		ID:           row.ID,
		CalendarID:   row.CalendarID,
		Title:        row.Title,
		Description:  row.Description,
		Location:     row.Location,
		Start:        row.StartAt,
		End:          row.EndAt,
		AllDay:       row.AllDay,
		Status:       model.EventStatus(row.Status),
		LastModified: row.LastModified,
		HTMLLink:     row.HTMLLink,
	}
	if row.Attendees != "" {
		if err := json.Unmarshal([]byte(row.Attendees), &ev.Attendees); err != nil {
			return model.Event{}, fmt.Errorf("unmarshal attendees: %w", err)
		}
	}
	if row.Reminders != "" {
		if err := json.Unmarshal([]byte(row.Reminders), &ev.Reminders); err != nil {
			return model.Event{}, fmt.Errorf("unmarshal reminders: %w", err)
		}
	}
	return ev, nil
}
