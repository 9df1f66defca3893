package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleInsertKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if m.Form == nil {
		m.Mode = ModeNormal
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.Form = nil
		m.Mode = ModeNormal
		return m, nil
	case "enter":
		return m.commitForm()
	case "tab":
		m.Form.NextField()
		return m, nil
	case "shift+tab":
		m.Form.PrevField()
		return m, nil
	case "ctrl+a":
		m.Form.ToggleAllDay()
		return m, nil
	case "backspace":
		m.Form.Backspace()
		return m, nil
	}

	if key.Type == tea.KeyRunes {
		for _, r := range key.Runes {
			m.Form.TypeRune(r)
		}
	} else if key.Type == tea.KeySpace {
		m.Form.TypeRune(' ')
	}
	return m, nil
}

// commitForm builds the event and hands it to the sync collaborator.
// The mode returns to Normal regardless of commit outcome; a late
// failure only updates the status bar.
func (m Model) commitForm() (Model, tea.Cmd) {
	ev := m.Form.BuildEvent()
	m.Form = nil
	m.Mode = ModeNormal

	if m.syncer == nil {
		if ev.ID == "" {
			ev.ID = localEventID()
		}
		m.Events[ev.ID] = ev
		m.setStatus("Saved: "+ev.Title, false)
		return m, nil
	}
	m.setStatus("Saving: "+ev.Title, false)
	return m, saveEventCmd(m.syncer, ev)
}
