package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/model"
)

// onEventsFetched replaces the session's event set with the freshly
// synced window and re-arms reminders for it.
func (m Model) onEventsFetched(msg EventsFetchedMsg) (Model, tea.Cmd) {
	m.Events = make(map[string]model.Event, len(msg.Events))
	for _, ev := range msg.Events {
		m.Events[ev.ID] = ev
	}
	m.SelectedEventIndex = 0
	m.spinnerActive = false
	m.setStatus(fmt.Sprintf("Synced %d events", len(msg.Events)), false)

	if m.Scheduler != nil {
		now := time.Now().UTC()
		for _, ev := range msg.Events {
			m.Scheduler.Cancel(ev.ID)
			if _, err := m.Scheduler.ScheduleEvent(ev, now); err != nil {
				m.setStatus("reminder scheduling failed: "+err.Error(), true)
				break
			}
		}
	}
	return m, nil
}

func (m Model) onEventSaved(msg EventSavedMsg) (Model, tea.Cmd) {
	m.Events[msg.Event.ID] = msg.Event
	if msg.Created {
		m.setStatus("Created: "+msg.Event.Title, false)
	} else {
		m.setStatus("Saved: "+msg.Event.Title, false)
	}

	if m.Scheduler != nil {
		m.Scheduler.Cancel(msg.Event.ID)
		if _, err := m.Scheduler.ScheduleEvent(msg.Event, time.Now().UTC()); err != nil {
			m.setStatus("reminder scheduling failed: "+err.Error(), true)
		}
	}
	// Refresh an open detail panel showing this event.
	if m.Detail != nil && m.Detail.EventID == msg.Event.ID {
		m.openDetail(msg.Event)
	}
	return m, nil
}
