package update

import (
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/detail"
	"github.com/phasecurve/gcal-imp/internal/model"
)

const detailVisibleLines = 16

func (m *Model) openDetail(ev model.Event) {
	m.Detail = &DetailState{
		EventID: ev.ID,
		Lines:   detail.BuildEventLines(ev),
		Visible: detailVisibleLines,
	}
}

// handleDetailKey drives the detail panel: vim motions over the
// rendered lines, visual yank, and the event-level shortcuts.
func (m Model) handleDetailKey(key tea.KeyMsg) (Model, tea.Cmd) {
	d := m.Detail
	switch key.String() {
	case "esc":
		if d.VisualStart != nil {
			d.VisualStart = nil
			return m, nil
		}
		m.Detail = nil
		return m, nil
	case "q", "i":
		m.Detail = nil
		return m, nil

	case "h", "left":
		d.Cursor.Col--
	case "l", "right":
		d.Cursor.Col++
	case "j", "down":
		d.Cursor.Line++
	case "k", "up":
		d.Cursor.Line--
	case "w":
		d.Cursor = detail.NextWord(d.Lines, d.Cursor)
	case "b":
		d.Cursor = detail.PrevWord(d.Lines, d.Cursor)
	case "e":
		d.Cursor = detail.WordEnd(d.Lines, d.Cursor)
	case "0":
		d.Cursor.Col = 0
	case "^":
		d.Cursor.Col = detail.FirstNonWhitespace(m.detailLine(d.Cursor.Line))
	case "$":
		d.Cursor.Col = detail.LastCharIndex(m.detailLine(d.Cursor.Line))
	case "g":
		d.Cursor = detail.Position{}
	case "G":
		d.Cursor.Line = len(d.Lines) - 1
		d.Cursor.Col = 0

	case "v":
		if d.VisualStart != nil {
			d.VisualStart = nil
		} else {
			anchor := d.Cursor
			d.VisualStart = &anchor
		}
	case "y":
		return m.yankDetail()
	case "p":
		text, err := detail.PasteFromClipboard()
		if err != nil {
			m.setStatus("clipboard read failed: "+err.Error(), true)
		} else {
			m.setStatus("Clipboard: "+text, false)
		}
		return m, nil
	case "o":
		if url, ok := detail.URLOnLine(m.detailLine(d.Cursor.Line)); ok {
			if err := openURL(url); err != nil {
				m.setStatus("open failed: "+err.Error(), true)
			} else {
				m.setStatus("Opened "+url, false)
			}
		}
		return m, nil
	case "B":
		if ev, ok := m.Events[d.EventID]; ok && ev.HTMLLink != "" {
			if err := openURL(ev.HTMLLink); err != nil {
				m.setStatus("open failed: "+err.Error(), true)
			}
		}
		return m, nil
	case "E":
		if ev, ok := m.Events[d.EventID]; ok {
			m.Detail = nil
			m.Form = FormForEvent(ev)
			m.Mode = ModeInsert
		}
		return m, nil
	case "a":
		if ev, ok := m.Events[d.EventID]; ok {
			m.Detail = nil
			m.Form = NewEventForm(ev.StartDate())
			m.Form.CalendarID = m.CalendarID
			m.Mode = ModeInsert
		}
		return m, nil
	default:
		return m, nil
	}

	m.clampDetailCursor()
	return m, nil
}

// yankDetail copies the visual selection, or the cursor line when no
// anchor is set.
func (m Model) yankDetail() (Model, tea.Cmd) {
	d := m.Detail
	var text string
	if d.VisualStart != nil {
		sel := detail.Selection{Anchor: *d.VisualStart, Cursor: d.Cursor}
		text = sel.Extract(d.Lines)
		d.VisualStart = nil
	} else {
		text = m.detailLine(d.Cursor.Line)
	}
	if err := detail.CopyToClipboard(text); err != nil {
		m.setStatus("yank failed: "+err.Error(), true)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Yanked %d characters", len([]rune(text))), false)
	return m, nil
}

func (m Model) detailLine(i int) string {
	if m.Detail == nil || i < 0 || i >= len(m.Detail.Lines) {
		return ""
	}
	return m.Detail.Lines[i]
}

// clampDetailCursor keeps the cursor on a real character and pulls the
// scroll window along with it.
func (m *Model) clampDetailCursor() {
	d := m.Detail
	if len(d.Lines) == 0 {
		d.Cursor = detail.Position{}
		d.Scroll = 0
		return
	}
	if d.Cursor.Line < 0 {
		d.Cursor.Line = 0
	}
	if d.Cursor.Line >= len(d.Lines) {
		d.Cursor.Line = len(d.Lines) - 1
	}
	if d.Cursor.Col < 0 {
		d.Cursor.Col = 0
	}
	if last := detail.LastCharIndex(d.Lines[d.Cursor.Line]); d.Cursor.Col > last {
		d.Cursor.Col = last
	}
	d.Scroll = detail.ScrollOffset(d.Cursor.Line, d.Scroll, d.Visible, len(d.Lines))
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
