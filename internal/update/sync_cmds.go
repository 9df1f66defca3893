package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/model"
	"github.com/phasecurve/gcal-imp/internal/scheduler"
)

// Syncer is the slice of the sync engine the session drives. Every
// call is one logical action with a single outcome message.
type Syncer interface {
	FetchWindow(ctx context.Context, around time.Time) ([]model.Event, error)
	CreateEvent(ctx context.Context, ev model.Event) (model.Event, error)
	UpdateEvent(ctx context.Context, ev model.Event) (model.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	Calendars(ctx context.Context) ([]model.Calendar, error)
	Offline() bool
}

func fetchEventsCmd(s Syncer, around time.Time) tea.Cmd {
	return func() tea.Msg {
		events, err := s.FetchWindow(context.Background(), around)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return EventsFetchedMsg{Events: events}
	}
}

func saveEventCmd(s Syncer, ev model.Event) tea.Cmd {
	return func() tea.Msg {
		if ev.ID == "" {
			saved, err := s.CreateEvent(context.Background(), ev)
			if err != nil {
				return AppErrorMsg{Err: err}
			}
			return EventSavedMsg{Event: saved, Created: true}
		}
		saved, err := s.UpdateEvent(context.Background(), ev)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return EventSavedMsg{Event: saved}
	}
}

func deleteEventCmd(s Syncer, calendarID, eventID string) tea.Cmd {
	return func() tea.Msg {
		if err := s.DeleteEvent(context.Background(), calendarID, eventID); err != nil {
			return AppErrorMsg{Err: err}
		}
		return EventDeletedMsg{EventID: eventID}
	}
}

func loadCalendarsCmd(s Syncer) tea.Cmd {
	return func() tea.Msg {
		cals, err := s.Calendars(context.Background())
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return CalendarsLoadedMsg{Calendars: cals}
	}
}

func waitForAlertCmd(ch <-chan scheduler.Alert) tea.Cmd {
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return AlertDueMsg{Alert: a}
	}
}
