package update

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/phasecurve/gcal-imp/internal/detail"
	"github.com/phasecurve/gcal-imp/internal/model"
	"github.com/phasecurve/gcal-imp/internal/scheduler"
	"github.com/phasecurve/gcal-imp/internal/theme"
)

// Mode is the top-level interaction state. Exactly one is active at a
// time; unmatched keys within a mode are no-ops.
type Mode string

const (
	ModeNormal        Mode = "normal"
	ModeInsert        Mode = "insert"
	ModeVisual        Mode = "visual"
	ModeConfirmDelete Mode = "confirm_delete"
	ModeCommand       Mode = "command"
)

// View selects the calendar layout. Independent of Mode.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
	ViewYear  View = "year"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// DetailState is the open event-detail panel: rendered lines plus a
// character-indexed cursor, an optional text visual anchor, and the
// scroll window.
type DetailState struct {
	EventID     string
	Lines       []string
	Cursor      detail.Position
	VisualStart *detail.Position
	Scroll      int
	Visible     int
}

// Model is the session root. Every key event is dispatched against it
// exactly once, synchronously, according to the current Mode.
type Model struct {
	Mode       Mode
	ActiveView View

	SelectedDate time.Time
	Today        time.Time

	Events             map[string]model.Event
	SelectedEventIndex int

	// Date anchor, present only in Visual mode.
	VisualStart *time.Time

	// Active form, present only in Insert mode.
	Form *EventForm

	// Event pending deletion, present only in ConfirmDelete mode.
	DeleteConfirmationID string

	// Open detail panel, or nil.
	Detail *DetailState

	Calendars  []model.Calendar
	CalendarID string

	Theme       theme.Theme
	HelpVisible bool
	HelpScroll  int

	Status   StatusBar
	Quitting bool

	Scheduler *scheduler.Engine
	syncer    Syncer
	cfg       RuntimeConfig

	commandInput  textinput.Model
	syncSpinner   spinner.Model
	spinnerActive bool

	// g-prefix pending flag for the gg motion.
	gPending bool
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type EventsFetchedMsg struct {
	Events []model.Event
}

type EventSavedMsg struct {
	Event   model.Event
	Created bool
}

type EventDeletedMsg struct {
	EventID string
}

type CalendarsLoadedMsg struct {
	Calendars []model.Calendar
}

type AlertDueMsg struct {
	Alert scheduler.Alert
}

func NewModel() Model {
	return NewModelWithConfig(nil, nil, DefaultRuntimeConfig())
}

func NewModelWithConfig(syncer Syncer, engine *scheduler.Engine, cfg RuntimeConfig) Model {
	today := dateOf(time.Now().UTC())

	input := textinput.New()
	input.Prompt = ":"
	input.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		Mode:         ModeNormal,
		ActiveView:   viewFromName(cfg.DefaultView),
		SelectedDate: today,
		Today:        today,
		Events:       make(map[string]model.Event),
		CalendarID:   cfg.CalendarID,
		Theme:        theme.ByName(cfg.Theme),
		Scheduler:    engine,
		syncer:       syncer,
		cfg:          cfg,
		commandInput: input,
		syncSpinner:  spin,
	}
}

func viewFromName(name string) View {
	switch View(name) {
	case ViewWeek:
		return ViewWeek
	case ViewDay:
		return ViewDay
	case ViewYear:
		return ViewYear
	default:
		return ViewMonth
	}
}

// eventsOn returns the selected date's events sorted by start time,
// the list SelectedEventIndex indexes into.
func (m Model) eventsOn(date time.Time) []model.Event {
	return newIndex(m.Events).On(dateOf(date))
}

// selectedEvent resolves SelectedEventIndex against the selected
// date's event list.
func (m Model) selectedEvent() (model.Event, bool) {
	evs := m.eventsOn(m.SelectedDate)
	if len(evs) == 0 {
		return model.Event{}, false
	}
	i := m.SelectedEventIndex
	if i >= len(evs) {
		i = len(evs) - 1
	}
	return evs[i], true
}

// setSelectedDate moves the calendar cursor and resets the per-date
// event selection.
func (m *Model) setSelectedDate(date time.Time) {
	date = dateOf(date)
	if !date.Equal(m.SelectedDate) {
		m.SelectedDate = date
		m.SelectedEventIndex = 0
	}
}

func (m *Model) setStatus(text string, isError bool) {
	m.Status = StatusBar{Text: text, IsError: isError}
}
