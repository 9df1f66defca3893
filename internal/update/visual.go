package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/layout"
)

func (m Model) handleVisualKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc", "v":
		m.VisualStart = nil
		m.Mode = ModeNormal
	case "h", "left":
		m.setSelectedDate(m.SelectedDate.AddDate(0, 0, -1))
	case "l", "right":
		m.setSelectedDate(m.SelectedDate.AddDate(0, 0, 1))
	case "j", "down":
		m.setSelectedDate(m.SelectedDate.AddDate(0, 0, 7))
	case "k", "up":
		m.setSelectedDate(m.SelectedDate.AddDate(0, 0, -7))
	case "t":
		m.setSelectedDate(m.Today)
	case "enter":
		return m.commitVisualRange(), nil
	}
	return m, nil
}

// visualRange resolves the anchor and cursor into an ordered
// (start, end) pair, independent of which endpoint moved last.
func (m Model) visualRange() (start, end time.Time, ok bool) {
	if m.VisualStart == nil {
		return time.Time{}, time.Time{}, false
	}
	return layout.MinDate(*m.VisualStart, m.SelectedDate),
		layout.MaxDate(*m.VisualStart, m.SelectedDate), true
}

// commitVisualRange turns the selected range into a form: a timed
// single-day form for one day, a multi-day all-day form otherwise.
func (m Model) commitVisualRange() Model {
	start, end, ok := m.visualRange()
	if !ok {
		m.Mode = ModeNormal
		return m
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days <= 1 {
		m.Form = NewEventForm(start)
	} else {
		m.Form = NewAllDayForm(start, days)
	}
	m.Form.CalendarID = m.CalendarID
	m.VisualStart = nil
	m.Mode = ModeInsert
	return m
}
