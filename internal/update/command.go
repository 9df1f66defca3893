package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/commands"
	"github.com/phasecurve/gcal-imp/internal/theme"
)

func (m Model) handleCommandKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.leaveCommandMode()
		return m, nil
	case "enter":
		return m.dispatchCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(key)
	return m, cmd
}

func (m *Model) leaveCommandMode() {
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	m.Mode = ModeNormal
}

// dispatchCommand parses and runs the buffered colon-command. The
// buffer is cleared and the mode returns to Normal no matter how the
// parse went; only quit leaves the session instead.
func (m Model) dispatchCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.commandInput.Value())
	m.leaveCommandMode()

	parsed, err := commands.Parse(":" + raw)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	var out tea.Cmd
	handlers := commands.Handlers{
		Quit: func() (commands.Result, error) {
			m.Quitting = true
			out = tea.Quit
			return commands.Result{}, nil
		},
		Sync: func() (commands.Result, error) {
			if m.syncer == nil {
				return commands.Result{}, fmt.Errorf("sync is not configured")
			}
			m.spinnerActive = true
			out = tea.Batch(m.syncSpinner.Tick, fetchEventsCmd(m.syncer, m.SelectedDate))
			return commands.Result{Message: "syncing..."}, nil
		},
		Goto: func(args commands.GotoArgs) (commands.Result, error) {
			m.setSelectedDate(args.Date)
			return commands.Result{Message: "Jumped to " + m.SelectedDate.Format("2006-01-02")}, nil
		},
		NewEvent: func(args commands.NewEventArgs) (commands.Result, error) {
			m.Form = NewEventForm(m.SelectedDate)
			m.Form.CalendarID = m.CalendarID
			m.Form.Title = args.Title
			m.Mode = ModeInsert
			return commands.Result{}, nil
		},
		SwitchCalendar: func(args commands.SwitchCalendarArgs) (commands.Result, error) {
			return m.switchCalendar(args.Name)
		},
		Theme: func(args commands.ThemeArgs) (commands.Result, error) {
			t := theme.ByName(args.Name)
			if t.Name != args.Name {
				return commands.Result{}, fmt.Errorf("Unknown theme: %s (themes: %s)", args.Name, strings.Join(theme.Names(), ", "))
			}
			m.Theme = t
			return commands.Result{Message: "Theme: " + t.Name}, nil
		},
		Help: func() (commands.Result, error) {
			m.HelpVisible = !m.HelpVisible
			m.HelpScroll = 0
			return commands.Result{}, nil
		},
	}

	res, err := commands.Execute(parsed, handlers)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, out
	}
	if res.Message != "" {
		m.setStatus(res.Message, false)
	}
	return m, out
}

// switchCalendar accepts either a calendar id or its display name.
func (m *Model) switchCalendar(name string) (commands.Result, error) {
	for _, cal := range m.Calendars {
		if cal.ID == name || strings.EqualFold(cal.Name, name) {
			m.CalendarID = cal.ID
			return commands.Result{Message: "Calendar: " + cal.Name}, nil
		}
	}
	if len(m.Calendars) == 0 {
		// Calendar list not loaded yet; trust the name.
		m.CalendarID = name
		return commands.Result{Message: "Calendar: " + name}, nil
	}
	return commands.Result{}, fmt.Errorf("Unknown calendar: %s", name)
}
