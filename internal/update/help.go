package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const helpMarkdown = `# gcal-imp

## Navigation (Normal mode)

| Key | Action |
|---|---|
| h / l | previous / next day |
| j / k | down / up (week in month view, event in week and day views) |
| gg / G | first / last day of month |
| { / } | previous / next month |
| t | jump to today |
| Enter | drill into day view |

## Views

| Key | View |
|---|---|
| m | month |
| w | week |
| d | day |
| y | year |

## Events

| Key | Action |
|---|---|
| a | new event |
| A | new all-day event |
| E | edit selected event |
| x | delete selected event (y/n confirm) |
| v | visual date-range selection, Enter creates event |
| i | open event details |
| S | sync now |

## Detail panel

w / b / e word motions, 0 / ^ / $ line motions, g / G top and bottom,
v visual selection, y yank, p inspect clipboard, o open url under
cursor, B open event in browser, E edit, q close.

## Commands

` + "`:q` `:w` `:goto YYYY-MM-DD` `:new [title]` `:cal <name>` `:theme <name>` `:help`"

func helpLineCount() int {
	return len(strings.Split(helpMarkdown, "\n"))
}

func (m Model) handleHelpKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "j", "down":
		if m.HelpScroll < helpLineCount()-1 {
			m.HelpScroll++
		}
	case "k", "up":
		if m.HelpScroll > 0 {
			m.HelpScroll--
		}
	case "esc", "q", "?":
		m.HelpVisible = false
		m.HelpScroll = 0
	}
	return m, nil
}
