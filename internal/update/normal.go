package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/layout"
)

func (m Model) handleNormalKey(key tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := key.String()

	if m.gPending {
		m.gPending = false
		if keyStr == "g" {
			m.setSelectedDate(layout.FirstOfMonth(m.SelectedDate))
		}
		return m, nil
	}

	switch keyStr {
	case "h", "left":
		m.setSelectedDate(m.SelectedDate.AddDate(0, 0, -1))
	case "l", "right":
		m.setSelectedDate(m.SelectedDate.AddDate(0, 0, 1))
	case "j", "down":
		m.moveVertical(1)
	case "k", "up":
		m.moveVertical(-1)
	case "t":
		m.setSelectedDate(m.Today)
	case "g":
		m.gPending = true
	case "G":
		m.setSelectedDate(layout.LastOfMonth(m.SelectedDate))
	case "{":
		m.setSelectedDate(layout.AddMonths(m.SelectedDate, -1))
	case "}":
		m.setSelectedDate(layout.AddMonths(m.SelectedDate, 1))

	case "m":
		m.ActiveView = ViewMonth
	case "w":
		m.ActiveView = ViewWeek
	case "d":
		m.ActiveView = ViewDay
	case "y":
		m.ActiveView = ViewYear

	case "a":
		m.Form = NewEventForm(m.SelectedDate)
		m.Form.CalendarID = m.CalendarID
		m.Mode = ModeInsert
	case "A":
		m.Form = NewAllDayForm(m.SelectedDate, 1)
		m.Form.CalendarID = m.CalendarID
		m.Mode = ModeInsert
	case "E":
		if ev, ok := m.selectedEvent(); ok {
			m.Form = FormForEvent(ev)
			m.Mode = ModeInsert
		}
	case "x":
		if ev, ok := m.selectedEvent(); ok {
			m.DeleteConfirmationID = ev.ID
			m.Mode = ModeConfirmDelete
		}
	case "v":
		anchor := m.SelectedDate
		m.VisualStart = &anchor
		m.Mode = ModeVisual
	case "i":
		if ev, ok := m.selectedEvent(); ok {
			m.openDetail(ev)
		}
	case "enter":
		switch m.ActiveView {
		case ViewMonth, ViewWeek:
			m.ActiveView = ViewDay
		case ViewYear:
			m.ActiveView = ViewMonth
		}

	case ":":
		m.enterCommandMode("")
	case "?":
		m.enterCommandMode("help")
	case "S":
		return m.startSync()
	}

	return m, nil
}

// moveVertical is view-dependent: month steps by week, year by month,
// week and day cycle through the selected date's event list.
func (m *Model) moveVertical(dir int) {
	switch m.ActiveView {
	case ViewMonth:
		m.setSelectedDate(m.SelectedDate.AddDate(0, 0, 7*dir))
	case ViewYear:
		m.setSelectedDate(layout.AddMonths(m.SelectedDate, dir))
	case ViewWeek, ViewDay:
		n := len(m.eventsOn(m.SelectedDate))
		m.SelectedEventIndex = cycleIndex(m.SelectedEventIndex, dir, n)
	}
}

func (m *Model) enterCommandMode(seed string) {
	m.Mode = ModeCommand
	m.commandInput.SetValue(seed)
	m.commandInput.CursorEnd()
	m.commandInput.Focus()
}

// startSync kicks a fetch for the configured window around the
// selected date.
func (m Model) startSync() (Model, tea.Cmd) {
	if m.syncer == nil {
		m.setStatus("sync is not configured", true)
		return m, nil
	}
	m.spinnerActive = true
	m.setStatus("syncing...", false)
	return m, tea.Batch(m.syncSpinner.Tick, fetchEventsCmd(m.syncer, m.SelectedDate))
}
