package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleConfirmDeleteKey gates every key behind the pending
// confirmation: only an explicit yes deletes, everything that answers
// no cancels, all other keys are swallowed.
func (m Model) handleConfirmDeleteKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		id := m.DeleteConfirmationID
		m.DeleteConfirmationID = ""
		m.Mode = ModeNormal
		return m.deleteEvent(id)
	case "n", "N", "esc":
		m.DeleteConfirmationID = ""
		m.Mode = ModeNormal
	}
	return m, nil
}

// deleteEvent hands the deletion to the sync collaborator. Without one
// the event is removed from the session directly.
func (m Model) deleteEvent(id string) (Model, tea.Cmd) {
	ev, ok := m.Events[id]
	if !ok {
		m.setStatus("event no longer exists", true)
		return m, nil
	}
	if m.Scheduler != nil {
		m.Scheduler.Cancel(id)
	}
	if m.syncer == nil {
		delete(m.Events, id)
		m.SelectedEventIndex = 0
		m.setStatus("Deleted: "+ev.Title, false)
		return m, nil
	}
	return m, deleteEventCmd(m.syncer, ev.CalendarID, id)
}
