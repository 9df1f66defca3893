package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.Scheduler != nil {
		cmds = append(cmds, waitForAlertCmd(m.Scheduler.C()))
	}
	if m.syncer != nil {
		cmds = append(cmds, fetchEventsCmd(m.syncer, m.SelectedDate), loadCalendarsCmd(m.syncer))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.HelpVisible {
			return m.handleHelpKey(typed)
		}
		if m.Detail != nil && m.Mode == ModeNormal {
			return m.handleDetailKey(typed)
		}

		switch m.Mode {
		case ModeNormal:
			return m.handleNormalKey(typed)
		case ModeInsert:
			return m.handleInsertKey(typed)
		case ModeVisual:
			return m.handleVisualKey(typed)
		case ModeConfirmDelete:
			return m.handleConfirmDeleteKey(typed)
		case ModeCommand:
			return m.handleCommandKey(typed)
		}

	case spinner.TickMsg:
		if m.spinnerActive {
			var cmd tea.Cmd
			m.syncSpinner, cmd = m.syncSpinner.Update(typed)
			return m, cmd
		}

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.spinnerActive = false
		if typed.Err != nil {
			m.setStatus(typed.Err.Error(), true)
		}
		return m, nil

	case EventsFetchedMsg:
		return m.onEventsFetched(typed)

	case EventSavedMsg:
		return m.onEventSaved(typed)

	case EventDeletedMsg:
		if ev, ok := m.Events[typed.EventID]; ok {
			delete(m.Events, typed.EventID)
			m.SelectedEventIndex = 0
			m.setStatus("Deleted: "+ev.Title, false)
		}
		if m.Detail != nil && m.Detail.EventID == typed.EventID {
			m.Detail = nil
		}
		return m, nil

	case CalendarsLoadedMsg:
		m.Calendars = typed.Calendars
		return m, nil

	case AlertDueMsg:
		m.setStatus(fmt.Sprintf("Reminder: %s", typed.Alert.Title), false)
		if m.Scheduler != nil {
			return m, waitForAlertCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}
