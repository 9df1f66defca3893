package update

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phasecurve/gcal-imp/internal/model"
)

func testModel() Model {
	m := NewModel()
	m.SelectedDate = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	m.Today = time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("update returned unexpected model type %T", next)
		}
	}
	return m
}

func withEvent(m Model, ev model.Event) Model {
	m.Events[ev.ID] = ev
	return m
}

func timedOn(id, title string, start time.Time) model.Event {
	return model.Event{
		ID:    id,
		Title: title,
		Start: start,
		End:   start.Add(time.Hour),
	}
}

func TestPreviousDayFourTimes(t *testing.T) {
	m := press(t, testModel(), "h", "h", "h", "h")
	want := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	if !m.SelectedDate.Equal(want) {
		t.Fatalf("expected %s, got %s", want, m.SelectedDate)
	}
}

func TestPreviousMonthWrapsYear(t *testing.T) {
	m := press(t, testModel(), "{")
	want := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	if !m.SelectedDate.Equal(want) {
		t.Fatalf("expected %s, got %s", want, m.SelectedDate)
	}
}

func TestNextMonthClampsDay(t *testing.T) {
	m := testModel()
	m.SelectedDate = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	m = press(t, m, "}")
	want := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	if !m.SelectedDate.Equal(want) {
		t.Fatalf("expected %s, got %s", want, m.SelectedDate)
	}
}

func TestGgAndGMotions(t *testing.T) {
	m := press(t, testModel(), "g", "g")
	if m.SelectedDate.Day() != 1 {
		t.Fatalf("gg must jump to first of month, got %s", m.SelectedDate)
	}
	m = press(t, m, "G")
	if m.SelectedDate.Day() != 31 {
		t.Fatalf("G must jump to last of month, got %s", m.SelectedDate)
	}
}

func TestTodayJump(t *testing.T) {
	m := press(t, testModel(), "t")
	if !m.SelectedDate.Equal(m.Today) {
		t.Fatalf("expected today, got %s", m.SelectedDate)
	}
}

func TestViewSwitches(t *testing.T) {
	m := testModel()
	for keyStr, want := range map[string]View{"w": ViewWeek, "d": ViewDay, "y": ViewYear, "m": ViewMonth} {
		m = press(t, m, keyStr)
		if m.ActiveView != want {
			t.Fatalf("key %q: expected view %s, got %s", keyStr, want, m.ActiveView)
		}
	}
}

func TestSelectedEventIndexResetsOnDateChange(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	m := withEvent(testModel(), timedOn("e1", "One", start))
	m = withEvent(m, timedOn("e2", "Two", start.Add(2*time.Hour)))
	m.ActiveView = ViewDay
	m = press(t, m, "j")
	if m.SelectedEventIndex != 1 {
		t.Fatalf("expected index 1, got %d", m.SelectedEventIndex)
	}
	m = press(t, m, "h")
	if m.SelectedEventIndex != 0 {
		t.Fatalf("index must reset when the date changes, got %d", m.SelectedEventIndex)
	}
}

func TestInsertModeLifecycle(t *testing.T) {
	m := press(t, testModel(), "a")
	if m.Mode != ModeInsert || m.Form == nil {
		t.Fatalf("expected Insert mode with a form, got mode=%s", m.Mode)
	}
	m = press(t, m, "esc")
	if m.Mode != ModeNormal || m.Form != nil {
		t.Fatalf("escape must discard the form, mode=%s", m.Mode)
	}
}

func TestInsertCommitAddsEvent(t *testing.T) {
	m := press(t, testModel(), "a", "L", "u", "n", "c", "h", "enter")
	if m.Mode != ModeNormal {
		t.Fatalf("commit must return to Normal, got %s", m.Mode)
	}
	if len(m.Events) != 1 {
		t.Fatalf("expected one event, got %d", len(m.Events))
	}
	for _, ev := range m.Events {
		if ev.Title != "Lunch" {
			t.Fatalf("unexpected title %q", ev.Title)
		}
	}
}

func TestVisualRangeOrderIndependent(t *testing.T) {
	m := press(t, testModel(), "v", "h", "h")
	start, end, ok := m.visualRange()
	if !ok {
		t.Fatal("expected an active range")
	}
	if !start.Equal(time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)) ||
		!end.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range %s..%s", start, end)
	}
}

func TestVisualCommitThreeDaysBuildsAllDayForm(t *testing.T) {
	m := testModel()
	m.SelectedDate = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	m = press(t, m, "v", "l", "l", "enter")

	if m.Mode != ModeInsert || m.Form == nil {
		t.Fatalf("expected Insert mode with a form, got %s", m.Mode)
	}
	if !m.Form.AllDay {
		t.Fatal("three-day range must build an all-day form")
	}
	if m.Form.DurationMinutes != 3*24*60 {
		t.Fatalf("expected %d minutes, got %d", 3*24*60, m.Form.DurationMinutes)
	}
	if m.VisualStart != nil {
		t.Fatal("anchor must be cleared on commit")
	}
}

func TestVisualCommitSingleDayBuildsTimedForm(t *testing.T) {
	m := press(t, testModel(), "v", "enter")
	if m.Form == nil || m.Form.AllDay {
		t.Fatalf("single-day range must build a timed form: %+v", m.Form)
	}
}

func TestVisualEscapeClearsAnchor(t *testing.T) {
	m := press(t, testModel(), "v", "esc")
	if m.Mode != ModeNormal || m.VisualStart != nil {
		t.Fatalf("escape must clear the anchor, mode=%s", m.Mode)
	}
}

func TestDeleteConfirmationFlow(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	m := withEvent(testModel(), timedOn("e1", "Doomed", start))

	m = press(t, m, "x")
	if m.Mode != ModeConfirmDelete || m.DeleteConfirmationID != "e1" {
		t.Fatalf("expected confirmation for e1, mode=%s id=%s", m.Mode, m.DeleteConfirmationID)
	}

	// Any key that is not an answer is swallowed.
	m = press(t, m, "h")
	if m.Mode != ModeConfirmDelete {
		t.Fatal("confirmation must gate all other keys")
	}
	if !m.SelectedDate.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("gated keys must not move the cursor")
	}

	m = press(t, m, "n")
	if m.Mode != ModeNormal || m.DeleteConfirmationID != "" {
		t.Fatal("n must cancel the confirmation")
	}
	if _, ok := m.Events["e1"]; !ok {
		t.Fatal("cancel must not delete")
	}

	m = press(t, m, "x", "y")
	if _, ok := m.Events["e1"]; ok {
		t.Fatal("y must delete the event")
	}
	if m.Mode != ModeNormal {
		t.Fatalf("expected Normal after delete, got %s", m.Mode)
	}
}

func TestCommandGoto(t *testing.T) {
	m := press(t, testModel(), ":", "g", "o", "t", "o", " ", "2", "0", "2", "5", "-", "0", "3", "-", "0", "1", "enter")
	if m.Mode != ModeNormal {
		t.Fatalf("expected Normal after dispatch, got %s", m.Mode)
	}
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !m.SelectedDate.Equal(want) {
		t.Fatalf("expected %s, got %s", want, m.SelectedDate)
	}
}

func TestCommandGotoMissingArg(t *testing.T) {
	m := press(t, testModel(), ":", "g", "o", "t", "o", "enter")
	if !m.Status.IsError || m.Status.Text != "goto requires a date argument" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if m.Mode != ModeNormal {
		t.Fatalf("parse failure must still return to Normal, got %s", m.Mode)
	}
}

func TestCommandUnknown(t *testing.T) {
	m := press(t, testModel(), ":", "b", "o", "g", "u", "s", "enter")
	if !m.Status.IsError || !strings.HasPrefix(m.Status.Text, "Unknown command:") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestCommandEmpty(t *testing.T) {
	m := press(t, testModel(), ":", "enter")
	if !m.Status.IsError || m.Status.Text != "Empty command" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestCommandQuit(t *testing.T) {
	m := press(t, testModel(), ":", "q", "enter")
	if !m.Quitting {
		t.Fatal("expected quitting session")
	}
}

func TestCommandNewSeedsTitle(t *testing.T) {
	m := press(t, testModel(), ":", "n", "e", "w", " ", "G", "y", "m", "enter")
	if m.Mode != ModeInsert || m.Form == nil {
		t.Fatalf("expected Insert mode, got %s", m.Mode)
	}
	if m.Form.Title != "Gym" {
		t.Fatalf("expected seeded title, got %q", m.Form.Title)
	}
}

func TestCommandTheme(t *testing.T) {
	m := press(t, testModel(), ":", "t", "h", "e", "m", "e", " ", "n", "o", "r", "d", "enter")
	if m.Theme.Name != "nord" {
		t.Fatalf("expected nord theme, got %q", m.Theme.Name)
	}
}

func TestCommandThemeUnknownKeepsCurrent(t *testing.T) {
	m := press(t, testModel(), ":", "t", "h", "e", "m", "e", " ", "z", "enter")
	if m.Theme.Name != "default" {
		t.Fatalf("unknown theme must not change the palette, got %q", m.Theme.Name)
	}
	if !m.Status.IsError || !strings.HasPrefix(m.Status.Text, "Unknown theme: z") {
		t.Fatalf("expected unknown-theme error, got %+v", m.Status)
	}
}

func TestCommandEscapeCancels(t *testing.T) {
	m := press(t, testModel(), ":", "g", "esc")
	if m.Mode != ModeNormal {
		t.Fatalf("expected Normal, got %s", m.Mode)
	}
	m = press(t, m, ":", "enter")
	if m.Status.Text != "Empty command" {
		t.Fatalf("buffer must have been cleared, got %+v", m.Status)
	}
}

func TestHelpToggleViaQuestionMark(t *testing.T) {
	m := press(t, testModel(), "?", "enter")
	if !m.HelpVisible {
		t.Fatal("? then enter must open help")
	}
	m = press(t, m, "esc")
	if m.HelpVisible {
		t.Fatal("escape must close help")
	}
}

func TestDetailPanelLifecycle(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	ev := timedOn("e1", "Standup meeting", start)
	ev.Description = "Daily sync"
	m := withEvent(testModel(), ev)

	m = press(t, m, "i")
	if m.Detail == nil || m.Detail.EventID != "e1" {
		t.Fatalf("expected open detail for e1: %+v", m.Detail)
	}
	if m.Detail.Lines[0] != "Standup meeting" {
		t.Fatalf("unexpected first line %q", m.Detail.Lines[0])
	}

	m = press(t, m, "w")
	if m.Detail.Cursor.Col == 0 {
		t.Fatal("w must advance the cursor")
	}

	m = press(t, m, "esc")
	if m.Detail != nil {
		t.Fatal("escape must close the panel")
	}
}

func TestDetailVisualEscapeClearsAnchorFirst(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	m := withEvent(testModel(), timedOn("e1", "Standup", start))
	m = press(t, m, "i", "v")
	if m.Detail.VisualStart == nil {
		t.Fatal("v must set the text anchor")
	}
	m = press(t, m, "esc")
	if m.Detail == nil || m.Detail.VisualStart != nil {
		t.Fatal("first escape clears the anchor, not the panel")
	}
}

func TestEventSavedMessageUpdatesSession(t *testing.T) {
	m := testModel()
	ev := timedOn("srv-1", "Created", time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))
	next, _ := m.Update(EventSavedMsg{Event: ev, Created: true})
	m = next.(Model)
	if _, ok := m.Events["srv-1"]; !ok {
		t.Fatal("saved event must land in the session")
	}
	if m.Status.Text != "Created: Created" {
		t.Fatalf("unexpected status %q", m.Status.Text)
	}
}

func TestEventsFetchedReplacesSession(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	m := withEvent(testModel(), timedOn("stale", "Old", start))
	next, _ := m.Update(EventsFetchedMsg{Events: []model.Event{timedOn("fresh", "New", start)}})
	m = next.(Model)
	if _, ok := m.Events["stale"]; ok {
		t.Fatal("fetch must replace the event set")
	}
	if _, ok := m.Events["fresh"]; !ok {
		t.Fatal("fetched events must be present")
	}
}

func TestCollaboratorFailureOnlyUpdatesStatus(t *testing.T) {
	m := press(t, testModel(), "a", "enter")
	if m.Mode != ModeNormal {
		t.Fatalf("commit must land in Normal, got %s", m.Mode)
	}
	next, _ := m.Update(AppErrorMsg{Err: errSentinel})
	m = next.(Model)
	if m.Mode != ModeNormal {
		t.Fatal("a late failure must never revert the mode")
	}
	if !m.Status.IsError || m.Status.Text != "sync exploded" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

var errSentinel = errString("sync exploded")

type errString string

func (e errString) Error() string { return string(e) }
