package update

import (
	"fmt"
	"strings"

	"github.com/phasecurve/gcal-imp/internal/detail"
	"github.com/phasecurve/gcal-imp/internal/layout"
	"github.com/phasecurve/gcal-imp/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var body string
	switch {
	case m.HelpVisible:
		body = m.renderHelp()
	case m.Detail != nil:
		body = m.renderDetail()
	case m.Mode == ModeInsert && m.Form != nil:
		body = m.renderForm()
	default:
		body = m.renderGrid()
	}

	side := ""
	if !m.HelpVisible && m.Detail == nil && m.Mode != ModeInsert &&
		(m.ActiveView == ViewMonth || m.ActiveView == ViewWeek) {
		side = m.renderEventList()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("gcal-imp | %s | %s | %s", m.ActiveView, m.SelectedDate.Format("2006-01-02"), m.CalendarID),
		Body:       body,
		SidePane:   side,
		StatusLine: m.statusLine(),
		IsError:    m.Status.IsError,
		Footer:     m.footer(),
	})
}

func (m Model) statusLine() string {
	if m.Mode == ModeConfirmDelete {
		title := ""
		if ev, ok := m.Events[m.DeleteConfirmationID]; ok {
			title = ev.Title
		}
		return fmt.Sprintf("Delete '%s'? (y/n)", title)
	}
	line := m.Status.Text
	if m.spinnerActive {
		line = strings.TrimSpace(m.syncSpinner.View() + " " + line)
	}
	return line
}

func (m Model) footer() string {
	switch m.Mode {
	case ModeCommand:
		return m.commandInput.View()
	case ModeInsert:
		return "tab/shift+tab fields | ctrl+a all-day | enter save | esc cancel"
	case ModeVisual:
		start, end, _ := m.visualRange()
		return fmt.Sprintf("-- VISUAL -- %s .. %s | enter create | esc cancel",
			start.Format("01-02"), end.Format("01-02"))
	default:
		return "hjkl move | a add | E edit | x del | v visual | i details | : cmd | ? help"
	}
}

func (m Model) renderGrid() string {
	idx := newIndex(m.Events)
	switch m.ActiveView {
	case ViewWeek:
		return m.renderWeek(layout.BuildWeek(m.SelectedDate, m.Today, idx))
	case ViewDay:
		return m.renderDay(layout.BuildDay(m.SelectedDate, m.Today, idx))
	case ViewYear:
		return m.renderYear(layout.BuildYear(m.SelectedDate, m.Today, idx))
	default:
		return m.renderMonth(layout.BuildMonth(m.SelectedDate, m.Today, idx))
	}
}

func (m Model) renderMonth(ml layout.MonthLayout) string {
	var b strings.Builder
	b.WriteString(m.Theme.Title.Render(fmt.Sprintf("%s %d", ml.Month, ml.Year)))
	b.WriteString("\n")
	b.WriteString(m.Theme.WeekdayHeader.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	vStart, vEnd, visual := m.visualRange()
	for _, week := range ml.Weeks {
		for _, cell := range week.Days {
			label := fmt.Sprintf("%2d", cell.Date.Day())
			marker := " "
			if cell.HasEvents {
				marker = "."
			}
			text := label + marker

			style := m.Theme.Faint
			switch {
			case cell.IsSelected:
				style = m.Theme.Selected
			case visual && !cell.Date.Before(vStart) && !cell.Date.After(vEnd):
				style = m.Theme.VisualRange
			case cell.IsToday:
				style = m.Theme.Today
			case !cell.IsCurrentMonth:
				style = m.Theme.InactiveDay
			case cell.HasEvents:
				style = m.Theme.EventMarker
			}
			b.WriteString(" " + style.Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderWeek(wl layout.WeekLayout) string {
	var b strings.Builder
	b.WriteString(m.Theme.Title.Render("Week of " + wl.WeekStart.Format("Jan 2, 2006")))
	b.WriteString("\n")

	for _, day := range wl.Days {
		header := day.Date.Format("Mon 02")
		switch {
		case day.IsSelected:
			header = m.Theme.Selected.Render(header)
		case day.IsToday:
			header = m.Theme.Today.Render(header)
		default:
			header = m.Theme.WeekdayHeader.Render(header)
		}
		b.WriteString(header)
		b.WriteString("\n")
		for _, slot := range day.Slots {
			for _, ev := range slot.Events {
				b.WriteString(fmt.Sprintf("  %02d:%02d %s\n", ev.StartHour, ev.StartMinute, ev.Title))
			}
		}
	}
	return b.String()
}

func (m Model) renderDay(dl layout.DayLayout) string {
	var b strings.Builder
	title := dl.Date.Format("Monday, January 2, 2006")
	if dl.IsToday {
		title += " (today)"
	}
	b.WriteString(m.Theme.Title.Render(title))
	b.WriteString("\n")

	selectedID := ""
	if ev, ok := m.selectedEvent(); ok {
		selectedID = ev.ID
	}
	for _, hour := range dl.Hours {
		b.WriteString(m.Theme.Faint.Render(fmt.Sprintf("%02d:00", hour.Hour)))
		b.WriteString(" │")
		for _, ev := range hour.Events {
			entry := fmt.Sprintf(" %s (%dm)", ev.Title, ev.DurationMinutes)
			if ev.EventID == selectedID {
				entry = m.Theme.Selected.Render(entry)
			}
			b.WriteString(entry)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderYear(yl layout.YearLayout) string {
	var rows []string
	var row []string
	for _, month := range yl.Months {
		row = append(row, m.renderMiniMonth(month))
		if len(row) == 3 {
			rows = append(rows, joinColumns(row))
			row = nil
		}
	}
	header := m.Theme.Title.Render(fmt.Sprintf("%d", yl.Year))
	return header + "\n" + strings.Join(rows, "\n")
}

func (m Model) renderMiniMonth(grid layout.MonthGrid) string {
	var b strings.Builder
	name := grid.Month.String()
	if grid.IsCurrentMonth {
		name = m.Theme.Today.Render(name)
	} else {
		name = m.Theme.WeekdayHeader.Render(name)
	}
	b.WriteString(name)
	b.WriteString("\n")

	col := 0
	for pad := 0; pad < grid.FirstWeekday; pad++ {
		b.WriteString("   ")
		col++
	}
	for _, cell := range grid.Days {
		label := fmt.Sprintf("%2d", cell.Day)
		switch {
		case cell.IsSelected:
			label = m.Theme.Selected.Render(label)
		case cell.IsToday:
			label = m.Theme.Today.Render(label)
		case cell.HasEvents:
			label = m.Theme.EventMarker.Render(label)
		}
		b.WriteString(label + " ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func joinColumns(cols []string) string {
	split := make([][]string, len(cols))
	height := 0
	for i, col := range cols {
		split[i] = strings.Split(strings.TrimRight(col, "\n"), "\n")
		if len(split[i]) > height {
			height = len(split[i])
		}
	}
	var b strings.Builder
	for line := 0; line < height; line++ {
		for _, colLines := range split {
			cell := ""
			if line < len(colLines) {
				cell = colLines[line]
			}
			b.WriteString(fmt.Sprintf("%-24s", cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEventList() string {
	events := m.eventsOn(m.SelectedDate)
	var b strings.Builder
	b.WriteString(m.Theme.Title.Render(m.SelectedDate.Format("Jan 2")))
	b.WriteString("\n")
	if len(events) == 0 {
		b.WriteString(m.Theme.Faint.Render("no events"))
		return b.String()
	}
	for i, ev := range events {
		when := ev.Start.UTC().Format("15:04")
		if ev.AllDay {
			when = "all day"
		}
		line := fmt.Sprintf("%s  %s", when, ev.Title)
		if i == m.SelectedEventIndex {
			line = m.Theme.Selected.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderForm() string {
	f := m.Form
	var b strings.Builder
	if f.EventID == "" {
		b.WriteString(m.Theme.Title.Render("New event"))
	} else {
		b.WriteString(m.Theme.Title.Render("Edit event"))
	}
	b.WriteString("\n\n")

	write := func(field FormField, value string) {
		label := fmt.Sprintf("%-11s", field.String())
		if field == f.ActiveField {
			b.WriteString(m.Theme.Accent.Render("▶ " + label))
			b.WriteString(m.Theme.Cursor.Render(value + " "))
		} else {
			b.WriteString("  " + m.Theme.Faint.Render(label) + value)
		}
		b.WriteString("\n")
	}

	write(FieldTitle, f.Title)
	b.WriteString(fmt.Sprintf("  %s%s\n", m.Theme.Faint.Render(fmt.Sprintf("%-11s", "Date")), f.Date.Format("2006-01-02")))
	if !f.AllDay {
		write(FieldStartTime, f.TimeBuffer())
	}
	unit := "min"
	if f.AllDay {
		unit = "days"
	}
	write(FieldDuration, f.DurationBuffer()+" "+unit)
	write(FieldLocation, f.Location)
	write(FieldDescription, f.Description)

	if f.AllDay {
		b.WriteString("\n" + m.Theme.Faint.Render("all-day event"))
	}
	return b.String()
}

func (m Model) renderDetail() string {
	d := m.Detail
	var b strings.Builder

	end := d.Scroll + d.Visible
	if end > len(d.Lines) {
		end = len(d.Lines)
	}
	var sel *detail.Selection
	if d.VisualStart != nil {
		sel = &detail.Selection{Anchor: *d.VisualStart, Cursor: d.Cursor}
	}
	for i := d.Scroll; i < end; i++ {
		b.WriteString(m.renderDetailLine(i, sel))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetailLine paints one line with the cursor cell and any visual
// selection highlighted, character by character.
func (m Model) renderDetailLine(lineNo int, sel *detail.Selection) string {
	runes := []rune(m.Detail.Lines[lineNo])
	if len(runes) == 0 {
		if m.Detail.Cursor.Line == lineNo {
			return m.Theme.Cursor.Render(" ")
		}
		return ""
	}
	var b strings.Builder
	for col, r := range runes {
		pos := detail.Position{Line: lineNo, Col: col}
		switch {
		case pos == m.Detail.Cursor:
			b.WriteString(m.Theme.Cursor.Render(string(r)))
		case sel != nil && sel.Contains(pos):
			b.WriteString(m.Theme.VisualRange.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m Model) renderHelp() string {
	rendered := views.RenderMarkdown(helpMarkdown)
	lines := strings.Split(rendered, "\n")
	if m.HelpScroll > 0 && m.HelpScroll < len(lines) {
		lines = lines[m.HelpScroll:]
	}
	return strings.Join(lines, "\n")
}
